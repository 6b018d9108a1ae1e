// Package logging provides structured logging for the web IDE.
//
// It wraps Go's log/slog package to produce JSON-formatted logs with
// persistent attributes, so diagnostics from the editor bridge, the runner,
// and the TUI can be correlated after the fact. Logs go to a file under the
// configured log directory, or to stderr when no directory is set.
//
// Child loggers carry context:
//
//	log := logger.WithComponent("bridge").WithField("program-input-field")
//	log.Warn("host form field not found")
//
// NopLogger returns a logger that discards everything; it is the default for
// components constructed without an explicit logger, and the usual choice in
// tests.
package logging
