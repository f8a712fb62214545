package config

// Config holds the non-secret settings of hwbot.
//
// Credentials never live here: they are read from the process environment
// once at startup (see LoadCredentials) and are immutable for the process
// lifetime. The file only tunes observability and transport knobs.
type Config struct {
	Logging  LoggingConfig  `json:"logging"`
	HTTP     HTTPConfig     `json:"http,omitempty"`
	Notifier NotifierConfig `json:"notifier,omitempty"`
}

type LoggingConfig struct {
	Level   string      `json:"level"`
	Console bool        `json:"console"`
	File    LoggingFile `json:"file"`
}

type LoggingFile struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// HTTPConfig tunes the status endpoint client.
type HTTPConfig struct {
	// Timeout is a Go duration string (e.g. "10s", "1m") bounding each
	// status request. Empty means the built-in default.
	Timeout string `json:"timeout,omitempty"`
}

// NotifierConfig tunes the outbound notification boundary.
type NotifierConfig struct {
	RatePerSec int `json:"rate_per_sec,omitempty"`
	// SendTimeout is a Go duration string bounding each delivery attempt.
	SendTimeout string `json:"send_timeout,omitempty"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "INFO",
			Console: true,
			File: LoggingFile{
				Enabled: true,
				Path:    "./hwbot.log",
			},
		},
	}
}
