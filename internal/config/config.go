package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/ethanolivertroy/riskboard/internal/models"
)

// EnvBaseURL overrides the configured base URL when set.
const EnvBaseURL = "RISKBOARD_BASE_URL"

// File mirrors the on-disk config file.
type File struct {
	BaseURL        string `toml:"base_url"`
	Format         string `toml:"format"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	NoColor        bool   `toml:"no_color"`
}

// Options carries the command-line inputs to Resolve. Zero values mean
// "not set on the command line".
type Options struct {
	ConfigPath  string // empty means the default path
	BaseURL     string
	Format      string
	Output      string
	Timeout     time.Duration
	NoColor     bool
	Interactive bool
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "riskboard", "config.toml"), nil
}

// Resolve merges flags, environment and the config file into a Config.
// Flags win over the environment, the environment wins over the file, the
// file wins over defaults.
func Resolve(opts Options) (*models.Config, error) {
	cfg := models.DefaultConfig()

	file, err := loadFile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.Format != "" {
		cfg.Format = file.Format
	}
	if file.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(file.TimeoutSeconds) * time.Second
	}
	if file.NoColor {
		cfg.NoColor = true
	}

	if env := os.Getenv(EnvBaseURL); env != "" {
		cfg.BaseURL = env
	}

	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
	}
	if opts.NoColor {
		cfg.NoColor = true
	}
	cfg.OutputFile = opts.Output
	cfg.Interactive = opts.Interactive

	return cfg, nil
}

// loadFile reads the config file at path, or the default location when path
// is empty. A missing file at the default location is not an error.
func loadFile(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return &File{}, nil
		}
		path = defaultPath
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if os.IsNotExist(err) && !explicit {
			return &File{}, nil
		}
		return nil, errors.Wrap(err, "failed to read config file "+path)
	}
	return &f, nil
}
