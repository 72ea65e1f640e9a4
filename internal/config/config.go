package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/dailylesson/pkg/archive"
	"github.com/dmitrymomot/dailylesson/pkg/db"
	"github.com/dmitrymomot/dailylesson/pkg/logger"
	"github.com/dmitrymomot/dailylesson/pkg/mailer"
	"github.com/dmitrymomot/dailylesson/pkg/mailer/resend"
	"github.com/dmitrymomot/dailylesson/pkg/mailer/smtp"
)

// Mail transports.
const (
	TransportSMTP   = "smtp"
	TransportResend = "resend"
	TransportLog    = "log"
)

// Ledger drivers.
const (
	LedgerNone     = "none"
	LedgerMemory   = "memory"
	LedgerRedis    = "redis"
	LedgerPostgres = "postgres"
)

// DryRunRecipient is used by the log transport when no address is configured.
const DryRunRecipient = "dry-run@localhost"

// Config is the complete application configuration.
type Config struct {
	Course   Course
	Mail     Mail
	Ledger   Ledger
	Mailer   mailer.Config
	SMTP     smtp.Config
	Resend   resend.Config
	Database db.Config
	Archive  archive.Config
	Logger   logger.Config
	Sentry   logger.SentryConfig

	ScheduleCron    string `env:"SCHEDULE_CRON" envDefault:"0 7 * * *"`
	FailOnSendError bool   `env:"FAIL_ON_SEND_ERROR" envDefault:"false"`
}

// Course identifies the running course and its calendar.
type Course struct {
	Name      string `env:"COURSE_NAME" envDefault:"javascript-deep-dive"`
	StartDate string `env:"COURSE_START_DATE" envDefault:"2026-02-24"`
	Timezone  string `env:"COURSE_TIMEZONE" envDefault:"Local"`
}

// Location loads the course time zone.
func (c Course) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Start parses the start date as midnight in the course time zone.
func (c Course) Start() (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(time.DateOnly, c.StartDate, loc)
}

// Mail selects the transport and the single recipient.
type Mail struct {
	Transport string `env:"MAIL_TRANSPORT" envDefault:"smtp"`
	Recipient string `env:"EMAIL_RECIPIENT"`
	Sender    string `env:"EMAIL_ADDRESS"`
}

// To returns the recipient, falling back to the sender address.
func (m Mail) To() string {
	if m.Recipient != "" {
		return m.Recipient
	}
	if m.Sender != "" {
		return m.Sender
	}
	if m.Transport == TransportLog {
		return DryRunRecipient
	}
	return ""
}

// Ledger configures the optional sent-marker store.
type Ledger struct {
	Driver   string        `env:"LEDGER_DRIVER" envDefault:"none"`
	RedisURL string        `env:"REDIS_URL"`
	Prefix   string        `env:"LEDGER_REDIS_PREFIX" envDefault:"dailylesson"`
	TTL      time.Duration `env:"LEDGER_TTL" envDefault:"48h"`
}

// Load reads optional .env files and parses the process environment.
// Missing .env files are not an error. The result is not validated.
func Load(dotenv ...string) (*Config, error) {
	if err := LoadDotEnv(dotenv...); err != nil {
		return nil, err
	}
	return Parse(env.Options{})
}

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding variables that are already set.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, p, err)
		}
	}
	return nil
}

// Parse fills a Config using opts. Set opts.Environment to parse a fixed map
// instead of the process environment.
func Parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Mail.Transport = strings.ToLower(strings.TrimSpace(c.Mail.Transport))
	c.Ledger.Driver = strings.ToLower(strings.TrimSpace(c.Ledger.Driver))
	c.Course.Name = strings.TrimSpace(c.Course.Name)
	c.Course.StartDate = strings.TrimSpace(c.Course.StartDate)
	if c.Course.Timezone == "" {
		c.Course.Timezone = "Local"
	}
	if c.Ledger.Driver == "" {
		c.Ledger.Driver = LedgerNone
	}
}

// Validate reports every problem found, joined with ErrInvalidConfig.
// It never performs network calls.
func (c *Config) Validate() error {
	var errs []error
	problem := func(name string, err error) {
		errs = append(errs, fmt.Errorf("%s %w", name, err))
	}

	if c.Course.Name == "" {
		problem("COURSE_NAME", ErrRequired)
	}
	if _, err := c.Course.Location(); err != nil {
		problem("COURSE_TIMEZONE", ErrMalformed)
	} else if _, err := c.Course.Start(); err != nil {
		problem("COURSE_START_DATE", ErrMalformed)
	}

	switch c.Mail.Transport {
	case TransportSMTP:
		if c.SMTP.SenderEmail == "" {
			problem("EMAIL_ADDRESS", ErrRequired)
		}
		if c.SMTP.Password == "" {
			problem("EMAIL_PASSWORD", ErrRequired)
		}
		if c.SMTP.Host == "" {
			problem("SMTP_HOST", ErrRequired)
		}
		if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
			problem("SMTP_PORT", ErrMalformed)
		}
		if c.SMTP.Timeout < 0 {
			problem("SMTP_TIMEOUT", ErrMalformed)
		}
	case TransportResend:
		if c.Resend.APIKey == "" {
			problem("RESEND_API_KEY", ErrRequired)
		}
		if c.Resend.SenderEmail == "" {
			problem("EMAIL_ADDRESS", ErrRequired)
		}
	case TransportLog:
	default:
		problem("MAIL_TRANSPORT", ErrUnsupported)
	}

	if c.Mail.Transport != TransportLog && c.Mail.To() == "" {
		problem("EMAIL_RECIPIENT", ErrRequired)
	}

	switch c.Ledger.Driver {
	case LedgerNone, LedgerMemory:
	case LedgerRedis:
		if c.Ledger.RedisURL == "" {
			problem("REDIS_URL", ErrRequired)
		}
		if c.Ledger.TTL <= 0 {
			problem("LEDGER_TTL", ErrMalformed)
		}
	case LedgerPostgres:
		if c.Database.ConnectionString == "" {
			problem("DATABASE_CONN_URL", ErrRequired)
		}
	default:
		problem("LEDGER_DRIVER", ErrUnsupported)
	}

	if c.Archive.Enabled() {
		if c.Archive.AccessKey == "" {
			problem("ARCHIVE_ACCESS_KEY", ErrRequired)
		}
		if c.Archive.SecretKey == "" {
			problem("ARCHIVE_SECRET_KEY", ErrRequired)
		}
	}

	if strings.TrimSpace(c.ScheduleCron) == "" {
		problem("SCHEDULE_CRON", ErrRequired)
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
}
