package smtp

import "time"

// Config holds SMTP transport configuration.
// Defaults target Gmail with STARTTLS on the submission port.
type Config struct {
	Host        string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Username    string        `env:"SMTP_USERNAME"` // defaults to SenderEmail
	Password    string        `env:"EMAIL_PASSWORD"`
	SenderEmail string        `env:"EMAIL_ADDRESS"`
	SenderName  string        `env:"SMTP_FROM_NAME"`
	Port        int           `env:"SMTP_PORT" envDefault:"587"`
	Timeout     time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
}

func (c Config) username() string {
	if c.Username != "" {
		return c.Username
	}
	return c.SenderEmail
}
