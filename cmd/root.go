package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ethanolivertroy/riskboard/internal/client"
	"github.com/ethanolivertroy/riskboard/internal/config"
	"github.com/ethanolivertroy/riskboard/internal/models"
	"github.com/ethanolivertroy/riskboard/internal/reporter"
	"github.com/ethanolivertroy/riskboard/internal/view"
)

var (
	flagConfig      string
	flagBaseURL     string
	flagFormat      string
	flagOutput      string
	flagTimeout     int
	flagNoColor     bool
	flagInteractive bool
	flagVerbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "riskboard",
	Short: "Render the risks table from a findings backend",
	Long: `riskboard fetches the risks table from a findings backend and renders
it with fixed Host, Severity and Message columns.

The backend is any service exposing GET /api/v1/tables/risks returning a
JSON array of findings. A fetch failure is logged and the table renders
empty; the command still exits successfully.

The base URL is taken from --base-url, the RISKBOARD_BASE_URL environment
variable, or the config file, in that order.

Examples:
  # Render the risks table from the default backend
  riskboard

  # Point at another backend
  riskboard --base-url http://risks.internal:5649

  # Output as JSON
  riskboard --format json

  # Write CSV for a spreadsheet
  riskboard --format csv --output risks.csv

  # Browse the table interactively
  riskboard --interactive

  # Run a local demo backend
  riskboard mock`,
	RunE: runView,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Config file path (default: $HOME/.config/riskboard/config.toml)")
	rootCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Backend base URL (default: http://127.0.0.1:5649)")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: table, json, csv (default: table)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "HTTP request timeout in seconds (default: 30)")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the table in an interactive view")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(config.Options{
		ConfigPath:  flagConfig,
		BaseURL:     flagBaseURL,
		Format:      flagFormat,
		Output:      flagOutput,
		Timeout:     time.Duration(flagTimeout) * time.Second,
		NoColor:     flagNoColor,
		Interactive: flagInteractive,
	})
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	risks := client.NewRisksClient(cfg.BaseURL, cfg.Timeout)

	if cfg.Interactive {
		return view.Run(risks)
	}

	// One fetch per invocation. A failure is logged and rendered as an
	// empty table rather than an error exit.
	findings, err := risks.FetchRisks(cmd.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch risks table")
		findings = []models.Finding{}
	}

	rep := reporter.Get(cfg.Format, useColor(cfg))
	output, err := rep.Report(findings)
	if err != nil {
		return errors.Wrap(err, "failed to generate report")
	}

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, output, 0644); err != nil {
			return errors.Wrap(err, "failed to write output file")
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", cfg.OutputFile)
	} else {
		fmt.Print(string(output))
	}

	return nil
}

func useColor(cfg *models.Config) bool {
	return !cfg.NoColor && cfg.OutputFile == "" && isatty.IsTerminal(os.Stdout.Fd())
}
