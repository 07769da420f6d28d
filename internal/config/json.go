package config

import (
	"encoding/json"
	"os"

	"enrollform/internal/flagx"
	"enrollform/internal/timex"
)

// JsonConfig is the file-format DTO. Durations accept either strings
// like "500ms" or integer nanoseconds via timex.Duration.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	WelcomeDelay timex.Duration `json:"welcome_delay"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. No file given means nothing to do. Read or parse
// failures panic: a config file that was explicitly requested but
// cannot be used is a startup error.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.WelcomeDelay.Duration != 0 {
		cfg.WelcomeDelay = jc.WelcomeDelay.Duration
	}
}
