// Package config provides user preference management for regform.
//
// Preferences are a small YAML file holding presentation options: the TUI
// color theme and whether the reset control is shown. Form field values
// are never written to disk by any part of the application.
//
// # Configuration File Location
//
// Platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/regform/config.yaml or $HOME/.config/regform/config.yaml
//   - macOS: $HOME/.config/regform/config.yaml
//   - Windows: %LOCALAPPDATA%\regform\config.yaml
//
// An alternate path can be supplied (the CLI exposes it as --config).
//
// # Behavior
//
// A missing file yields defaults. A malformed file is an error. Invalid
// theme colors fall back per-key to the default so one typo does not
// discard an otherwise valid theme.
//
// # Usage Example
//
//	prefs, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	palette := tui.NewPalette(prefs.Theme)
package config
