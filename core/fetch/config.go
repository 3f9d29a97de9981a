package fetch

// Config holds configuration for the upstream catalog API client.
type Config struct {
	// BaseURL is the root of the upstream catalog API.
	BaseURL string `mapstructure:"base_url" default:""`
	// APIKey is the bearer token for the upstream API. Resolved from the
	// environment (UPSTREAM_API_KEY) or a .env file when not set explicitly.
	APIKey string `mapstructure:"api_key" default:""`
	// MaxAttempts is the number of attempts per fetch before giving up.
	MaxAttempts int `mapstructure:"max_attempts" default:"3"`
	// BaseDelayMS is the base retry delay in milliseconds.
	BaseDelayMS int `mapstructure:"base_delay_ms" default:"1000"`
	// TimeoutSeconds is the per-call connect and overall timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
