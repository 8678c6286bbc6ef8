package models

import "time"

// Config holds the resolved settings for one riskboard run
type Config struct {
	// Backend settings
	BaseURL string        // Root address of the dashboard backend
	Timeout time.Duration // HTTP request timeout

	// Output settings
	Format     string // "table", "json", "csv"
	OutputFile string // Optional output file path
	NoColor    bool   // Disable severity colors in the table format

	// Behavior settings
	Interactive bool // Render into the interactive grid instead of stdout
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		BaseURL: "http://127.0.0.1:5649",
		Timeout: 30 * time.Second,
		Format:  "table",
	}
}
