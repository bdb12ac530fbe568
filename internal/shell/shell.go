// Package shell defines the presentation-layer contract for trainbar.
//
// The same client and poller drive two very different surfaces: a system
// tray icon and a terminal UI. Shell is the capability set the core needs
// from either one, and Hooks are the app-side callbacks a shell invokes in
// response to user interaction. Adapters live in the tray and term
// subpackages; exactly one runs per process.
package shell

import (
	"context"

	"github.com/quabes/trainbar/internal/intervals"
)

// Shell is a presentation surface. Run owns the surface's event loop and
// blocks until the context is cancelled or the user quits. SetStatusText
// publishes the latest summary with overwrite semantics; it must be safe
// to call from any goroutine, including before Run starts.
type Shell interface {
	SetStatusText(text string)
	Run(ctx context.Context) error
}

// Hooks are the application callbacks a shell drives. All of them are
// safe to call from the shell's event goroutine; the blocking ones note it.
type Hooks struct {
	// FetchSummary performs a blocking stats fetch and returns display
	// text. Shells must call it off their event loop.
	FetchSummary func(ctx context.Context) string

	// RefreshNow triggers an asynchronous poll cycle that republishes the
	// status text. Returns immediately.
	RefreshNow func()

	// Credentials returns the credential values currently in use, for
	// pre-filling a settings form.
	Credentials func() intervals.Credentials

	// SaveCredentials persists new credentials, applies them to the
	// client, and triggers a refresh. Persistence failure is logged, not
	// surfaced; the new values still apply for the session.
	SaveCredentials func(intervals.Credentials)

	// ReloadCredentials re-reads the settings file, applies the result,
	// and triggers a refresh. Used by shells without a settings form.
	ReloadCredentials func()
}
