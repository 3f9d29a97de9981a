package store

// Config holds configuration for the catalog store.
type Config struct {
	// Path is the canonical store file (JSON document with metadata and the
	// product array). Backups, ledgers, and error records live next to it.
	Path string `mapstructure:"path" default:"data/products.json"`
	// BackupCount is how many rotated backups to retain.
	BackupCount int `mapstructure:"backup_count" default:"5"`
	// Ledger enables the monthly deletion ledger.
	Ledger bool `mapstructure:"ledger" default:"true"`
}
