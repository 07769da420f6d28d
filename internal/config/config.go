// Package config loads runtime settings: built-in defaults overlaid by
// an optional JSON file, overlaid by command-line flags.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// DatabasePath is the SQLite file holding all local records.
// WelcomeDelay is the pause between a successful registration or login
// and the welcome banner, mirroring the navigation delay of the form
// this replaces.
type Config struct {
	DatabasePath string
	WelcomeDelay time.Duration
}

// LoadDefaults populates c with the defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "enrollform.db"
	c.WelcomeDelay = 500 * time.Millisecond
}

// LoadConfig builds a Config from defaults, then JSON (if a config file
// was given), then flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
