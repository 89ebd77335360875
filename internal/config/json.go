package config

import (
	"encoding/json"
	"os"
	"time"

	"messagely/internal/flagx"
	"messagely/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON config
// files. It uses timex.Duration for interval fields so values can be
// written either as strings ("60m") or integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BCryptCost            int            `json:"bcrypt_cost"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags into the provided Config. When neither flag is
// set, no file is loaded. An unreadable or invalid file panics: a
// half-applied config is worse than a crash at startup.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.BCryptCost = c.BCryptCost
}
