package archive

// Config holds S3-compatible storage settings for the lesson archive.
// The archive is disabled when Bucket is empty.
type Config struct {
	Bucket    string `env:"ARCHIVE_BUCKET"`
	AccessKey string `env:"ARCHIVE_ACCESS_KEY"`
	SecretKey string `env:"ARCHIVE_SECRET_KEY"`
	// Endpoint is the custom S3 endpoint URL (MinIO, R2 and other S3-compatible services).
	Endpoint string `env:"ARCHIVE_ENDPOINT"`
	Region   string `env:"ARCHIVE_REGION" envDefault:"us-east-1"`
	Prefix   string `env:"ARCHIVE_PREFIX" envDefault:"lessons"`
	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"ARCHIVE_PATH_STYLE"`
}

// Enabled reports whether an archive bucket is configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = "us-east-1"
	}
}

func (c Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
