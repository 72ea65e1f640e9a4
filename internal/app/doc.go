// Package app builds a dispatcher from configuration and implements the
// command-line modes: run, serve, preview and list.
//
// New performs every fallible setup step (logger, curriculum, transport,
// ledger, archive) up front so a misconfigured process fails before it
// touches the mail server. Close releases connections and flushes Sentry.
package app
