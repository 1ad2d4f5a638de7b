package config

const (
	defaultIDHeader  = "ID"
	defaultLogFormat = "console"
	defaultLogLevel  = "warn"
)

// Default returns a Config populated with repository defaults. Column lists
// are left empty so the matching package's built-in lists apply.
func Default() Config {
	return Config{
		Output: Output{
			IDHeader: defaultIDHeader,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
