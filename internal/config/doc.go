// Package config loads the trainbar configuration file.
//
// # Overview
//
// Configuration lives in a small TOML file, by default at
// ~/.config/trainbar/config.toml:
//
//	base_url = "https://intervals.icu"
//	poll_seconds = 600
//	shell = "tray"
//
// A missing file or empty individual fields fall back to the defaults
// above; a file that exists but cannot be read or parsed is a startup
// error, since running against a half-applied configuration is worse than
// failing fast.
//
// Credentials are deliberately not part of this file; they live in the
// settings package, which has its own persistence contract and
// never-fail load semantics.
package config
