package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dailylesson/internal/config"
)

func parse(t *testing.T, vars map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.Parse(env.Options{Environment: vars})
	require.NoError(t, err)
	return cfg
}

func smtpEnv() map[string]string {
	return map[string]string{
		"EMAIL_ADDRESS":  "me@example.com",
		"EMAIL_PASSWORD": "app-password",
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg := parse(t, smtpEnv())

	assert.Equal(t, "javascript-deep-dive", cfg.Course.Name)
	assert.Equal(t, "2026-02-24", cfg.Course.StartDate)
	assert.Equal(t, "Local", cfg.Course.Timezone)
	assert.Equal(t, config.TransportSMTP, cfg.Mail.Transport)
	assert.Equal(t, "me@example.com", cfg.Mail.To())
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, 30*time.Second, cfg.SMTP.Timeout)
	assert.Equal(t, "me@example.com", cfg.SMTP.SenderEmail)
	assert.Equal(t, "JS Deep Dive", cfg.Mailer.SubjectPrefix)
	assert.Equal(t, config.LedgerNone, cfg.Ledger.Driver)
	assert.Equal(t, 48*time.Hour, cfg.Ledger.TTL)
	assert.Equal(t, "0 7 * * *", cfg.ScheduleCron)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.FailOnSendError)
	assert.False(t, cfg.Archive.Enabled())

	require.NoError(t, cfg.Validate())

	start, err := cfg.Course.Start()
	require.NoError(t, err)
	assert.Equal(t, "2026-02-24", start.Format(time.DateOnly))
	assert.Equal(t, time.Local, start.Location())
}

func TestParse_Overrides(t *testing.T) {
	t.Parallel()

	vars := smtpEnv()
	vars["EMAIL_RECIPIENT"] = "student@example.com"
	vars["MAIL_TRANSPORT"] = " Resend "
	vars["RESEND_API_KEY"] = "re_123"
	vars["COURSE_TIMEZONE"] = "UTC"
	vars["COURSE_START_DATE"] = "2026-03-01"
	vars["LEDGER_DRIVER"] = "REDIS"
	vars["REDIS_URL"] = "redis://localhost:6379/0"
	vars["FAIL_ON_SEND_ERROR"] = "true"

	cfg := parse(t, vars)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.TransportResend, cfg.Mail.Transport)
	assert.Equal(t, config.LedgerRedis, cfg.Ledger.Driver)
	assert.Equal(t, "student@example.com", cfg.Mail.To())
	assert.True(t, cfg.FailOnSendError)

	start, err := cfg.Course.Start()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestParse_MalformedValue(t *testing.T) {
	t.Parallel()

	_, err := config.Parse(env.Options{Environment: map[string]string{"SMTP_PORT": "not-a-port"}})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		vars    map[string]string
		mention []string
	}{
		{
			name:    "smtp without credentials",
			vars:    map[string]string{},
			mention: []string{"EMAIL_ADDRESS", "EMAIL_PASSWORD", "EMAIL_RECIPIENT"},
		},
		{
			name:    "resend without api key",
			vars:    map[string]string{"MAIL_TRANSPORT": "resend", "EMAIL_ADDRESS": "me@example.com"},
			mention: []string{"RESEND_API_KEY"},
		},
		{
			name:    "unknown transport",
			vars:    map[string]string{"MAIL_TRANSPORT": "pigeon"},
			mention: []string{"MAIL_TRANSPORT"},
		},
		{
			name:    "bad start date",
			vars:    map[string]string{"MAIL_TRANSPORT": "log", "COURSE_START_DATE": "24/02/2026"},
			mention: []string{"COURSE_START_DATE"},
		},
		{
			name:    "bad timezone",
			vars:    map[string]string{"MAIL_TRANSPORT": "log", "COURSE_TIMEZONE": "Mars/Olympus"},
			mention: []string{"COURSE_TIMEZONE"},
		},
		{
			name:    "redis without url",
			vars:    map[string]string{"MAIL_TRANSPORT": "log", "LEDGER_DRIVER": "redis"},
			mention: []string{"REDIS_URL"},
		},
		{
			name:    "postgres without dsn",
			vars:    map[string]string{"MAIL_TRANSPORT": "log", "LEDGER_DRIVER": "postgres"},
			mention: []string{"DATABASE_CONN_URL"},
		},
		{
			name:    "unknown ledger",
			vars:    map[string]string{"MAIL_TRANSPORT": "log", "LEDGER_DRIVER": "etcd"},
			mention: []string{"LEDGER_DRIVER"},
		},
		{
			name:    "archive without keys",
			vars:    map[string]string{"MAIL_TRANSPORT": "log", "ARCHIVE_BUCKET": "lessons"},
			mention: []string{"ARCHIVE_ACCESS_KEY", "ARCHIVE_SECRET_KEY"},
		},
		{
			name:    "empty course name",
			vars:    map[string]string{"MAIL_TRANSPORT": "log", "COURSE_NAME": "  "},
			mention: []string{"COURSE_NAME"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := parse(t, tt.vars).Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			for _, name := range tt.mention {
				assert.Contains(t, err.Error(), name)
			}
		})
	}
}

func TestValidate_LogTransportNeedsNothing(t *testing.T) {
	t.Parallel()

	cfg := parse(t, map[string]string{"MAIL_TRANSPORT": "log"})
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DryRunRecipient, cfg.Mail.To())
}

func TestValidate_DryRunOverride(t *testing.T) {
	t.Parallel()

	cfg := parse(t, map[string]string{})
	require.Error(t, cfg.Validate())

	cfg.Mail.Transport = config.TransportLog
	require.NoError(t, cfg.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DAILYLESSON_TEST_DOTENV=from-file\n"), 0o600))

	t.Setenv("DAILYLESSON_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("DAILYLESSON_TEST_DOTENV"))

	require.NoError(t, config.LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("DAILYLESSON_TEST_DOTENV"))
}

func TestLoadDotEnv_KeepsExistingVariables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DAILYLESSON_TEST_KEEP=from-file\n"), 0o600))

	t.Setenv("DAILYLESSON_TEST_KEEP", "from-env")

	require.NoError(t, config.LoadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv("DAILYLESSON_TEST_KEEP"))
}
