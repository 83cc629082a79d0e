package config

import "time"

// Config holds runtime settings for the LifeLog CLI.
//
// ServerURL is the base URL of the API server without the /api suffix.
// LocalDBPath is the SQLite file holding the persisted session. LogFile
// receives the client log; empty means stderr.
type Config struct {
	ServerURL      string
	LocalDBPath    string
	LogFile        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.LocalDBPath = "lifelog.db"
	c.LogFile = ""
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then the JSON file named by -c/--config.
// Flags are layered on top by the command tree.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	return cfg
}
