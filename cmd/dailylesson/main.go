// Command dailylesson emails the lesson of the day from a fixed curriculum.
//
// Usage:
//
//	dailylesson [run|serve|preview|list] [flags]
//
// run (default) sends today's lesson once, serve sends on SCHEDULE_CRON until
// interrupted, preview prints the rendered HTML of a day and list prints the
// course calendar. Settings come from the environment and an optional .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/dmitrymomot/dailylesson/internal/app"
	"github.com/dmitrymomot/dailylesson/internal/config"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cmd := "run"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	flags := flag.NewFlagSet("dailylesson "+cmd, flag.ContinueOnError)
	flags.SetOutput(stderr)
	envFile := flags.String("env-file", ".env", "optional dotenv file")
	dryRun := flags.Bool("dry-run", false, "render and log the email instead of sending it")
	nowFlag := flags.String("now", "", "pretend today is this date (YYYY-MM-DD)")
	dayFlag := flags.Int("day", 1, "lesson day to preview")
	if err := flags.Parse(args); err != nil {
		return exitConfig
	}

	switch cmd {
	case "run", "serve", "preview", "list":
	default:
		fmt.Fprintf(stderr, "dailylesson: unknown command %q (want run, serve, preview or list)\n", cmd)
		return exitConfig
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(stderr, "dailylesson: %v\n", err)
		return exitConfig
	}

	// Offline modes never deliver mail or write storage. list keeps the
	// ledger to show the last sent day.
	if *dryRun || cmd == "preview" || cmd == "list" {
		cfg.Mail.Transport = config.TransportLog
		cfg.Archive.Bucket = ""
		if cmd != "list" {
			cfg.Ledger.Driver = config.LedgerNone
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "dailylesson: %v\n", err)
		if errors.Is(err, config.ErrInvalidConfig) {
			return exitConfig
		}
		return exitFailed
	}
	defer a.Close()

	switch cmd {
	case "serve":
		if err := a.Serve(ctx); err != nil {
			a.Logger().ErrorContext(ctx, "scheduler stopped with error", "error", err)
			if errors.Is(err, config.ErrInvalidConfig) {
				return exitConfig
			}
			return exitFailed
		}
		return exitOK

	case "preview":
		if err := a.Preview(*dayFlag); err != nil {
			fmt.Fprintf(stderr, "dailylesson: %v\n", err)
			return exitFailed
		}
		return exitOK

	case "list":
		if err := a.List(ctx); err != nil {
			fmt.Fprintf(stderr, "dailylesson: %v\n", err)
			return exitFailed
		}
		return exitOK
	}

	now := time.Now()
	if *nowFlag != "" {
		now, err = time.ParseInLocation(time.DateOnly, *nowFlag, a.Schedule().Location())
		if err != nil {
			fmt.Fprintf(stderr, "dailylesson: -now: %v\n", err)
			return exitConfig
		}
	}

	return a.ExitCode(a.Run(ctx, now))
}
