// Package logging provides structured logging for regform.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the application. Because the primary surface is a
// full-screen TUI, logging is silent by default: unless REGFORM_LOG_LEVEL is
// set, a nop logger is installed and nothing is written. When enabled, log
// output goes to stderr so it never corrupts the rendered form.
//
// # Log Levels
//
//   - Debug: per-field validation events, reset
//   - Info: submission attempts and outcomes
//   - Warn: non-fatal issues (config fallback to defaults)
//   - Error: startup failures
//
// # Structured Logging
//
// All log functions use structured fields:
//
//	logging.LogFieldEvent("email", "blur", false)
//	logging.LogSubmission(true)
//
// Raw field values are never logged; only identifiers and verdicts.
//
// # Configuration
//
// Initialize at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
package logging
