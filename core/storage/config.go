package storage

// Config holds configuration for the optional backup mirror.
type Config struct {
	// Endpoint is the URL of the object storage service. Leaving it empty
	// disables mirroring entirely.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket receiving store snapshots.
	Bucket string `mapstructure:"bucket" default:"catalog-backups"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Enabled reports whether a mirror endpoint has been configured.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}
