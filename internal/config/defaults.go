package config

const (
	defaultConfigPath      = "~/.config/img2rle/config.toml"
	defaultProjectConfig   = "img2rle.toml"
	defaultThreshold       = 128
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultTrailingNewline = true
	defaultLockTimeoutSecs = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Grid: Grid{
			Threshold: defaultThreshold,
		},
		Output: Output{
			TrailingNewline:    defaultTrailingNewline,
			LockTimeoutSeconds: defaultLockTimeoutSecs,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
