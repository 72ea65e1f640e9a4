// Package config loads dailylesson settings from the environment.
//
// Values come from the process environment and an optional .env file, parsed
// with caarlos0/env into a single Config. Component configs (mailer, SMTP,
// Resend, database, archive, logger) are embedded as-is so each package keeps
// ownership of its own variables.
//
// Parsing and validation are separate steps so that command-line overrides
// (such as a dry run switching the transport to "log") apply before Validate
// decides what is required. Validate reports every problem at once, joined
// with ErrInvalidConfig.
package config
