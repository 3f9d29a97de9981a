package server

// Config holds configuration for the webhook HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}
