// Package app provides the orchestration layer for trainbar.
//
// # Overview
//
// This package wires configuration, settings, the intervals.icu client,
// the shared state store, the background poller, and the chosen
// presentation shell into a running application. It is the composition
// root: every dependency is constructed here and passed explicitly to the
// components that need it.
//
// # Initialization
//
//  1. Load app config (base URL, poll interval, shell kind)
//  2. Load credentials from the settings file (never fails; defaults apply)
//  3. Build the API client
//  4. Build the shell hooks and the selected shell adapter
//  5. Launch the background poller goroutine
//  6. Run the shell event loop and block until exit
//
// # Polling Behavior
//
// The poller refreshes at a fixed cadence (default: 600 seconds). Each
// cycle fetches today's summary, records it in the state store, and
// publishes it to the shell's status sink. Cycles are sequential: a slow
// fetch delays the next tick, so fetches never overlap. Failures are
// logged and published as the fallback display text; the poller runs until
// the context is cancelled no matter how many fetches fail in a row.
//
// # User-triggered work
//
// Shell interactions go through shell.Hooks built here. Manual refreshes
// and credential changes each run on a short-lived goroutine so the
// shell's event loop never blocks on network I/O. A settings save
// persists to disk, swaps the client credentials, and refreshes
// immediately; persistence failure keeps the new credentials for the
// session and logs the error.
//
// # Fatal vs recoverable
//
// Only startup problems are fatal: an unparseable config file, an invalid
// base URL, or an unknown shell kind. Everything after startup recovers
// locally.
package app
