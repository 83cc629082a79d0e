package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lifelog/internal/flagx"
	"github.com/dmitrijs2005/lifelog/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	LocalDBPath    string         `json:"local_db_path"`
	LogFile        string         `json:"log_file"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the non-empty values of the JSON file named by
// -c or --config. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
