package config

import (
	"flag"
	"os"
	"time"

	"enrollform/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-d string   path to the local database file
//	-w int      welcome delay in milliseconds
//
// Arguments are pre-filtered so flags owned by other components (such
// as -c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	welcomeDelay := fs.Int("w", int(cfg.WelcomeDelay.Milliseconds()), "welcome delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.WelcomeDelay = time.Duration(*welcomeDelay) * time.Millisecond
}
