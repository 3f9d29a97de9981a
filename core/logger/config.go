package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the output encoding: console (development) or json (production).
	Format string `mapstructure:"format" default:"console"`
	// Path is an optional log file; when set, output goes to stdout and the file.
	Path string `mapstructure:"path" default:""`
}
