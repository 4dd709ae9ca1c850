// Package config provides configuration structures and loading for gotabular.
package config

// Config represents the complete application configuration.
type Config struct {
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	ErrorLog     ErrorLogConfig     `yaml:"error_log" mapstructure:"error_log"`
	Verification VerificationConfig `yaml:"verification" mapstructure:"verification"`
	Watch        WatchConfig        `yaml:"watch" mapstructure:"watch"`
	Logging      LoggingConfig      `yaml:"logging" mapstructure:"logging"`
}

// OutputConfig controls where and how group artifacts are written.
type OutputConfig struct {
	Dir    string `yaml:"dir" mapstructure:"dir"`       // Artifact directory
	Format string `yaml:"format" mapstructure:"format"` // xlsx or csv
}

// ErrorLogConfig controls the durable per-run error log.
type ErrorLogConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// VerificationConfig represents artifact verification settings.
type VerificationConfig struct {
	Method           string `yaml:"method" mapstructure:"method"` // "count" or "none"
	SkipVerification bool   `yaml:"skip_verification" mapstructure:"skip_verification"`
}

// WatchConfig represents watch-mode settings.
type WatchConfig struct {
	DebounceMillis int `yaml:"debounce_ms" mapstructure:"debounce_ms"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:    ".",
			Format: "xlsx",
		},
		ErrorLog: ErrorLogConfig{
			Path: "error_log.txt",
		},
		Verification: VerificationConfig{
			Method:           "count",
			SkipVerification: false,
		},
		Watch: WatchConfig{
			DebounceMillis: 500,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat, outputDir, format string, skipVerify bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if outputDir != "" {
		c.Output.Dir = outputDir
	}
	if format != "" {
		c.Output.Format = format
	}
	if skipVerify {
		c.Verification.SkipVerification = true
	}
}
