package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl files: context seed + server settings

	ListenAddr string // overrides the configured server address when set
	LogFormat  string
	LogLevel   string
}

// NewConfig validates and normalizes a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
