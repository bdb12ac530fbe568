// Package tray is the system-tray presentation shell, built on
// getlantern/systray.
//
// The tray surface has no window toolkit, so the "popup" is the icon's
// tooltip: the latest summary is always readable by hovering, and the
// first summary line doubles as the menu header. Settings have no dialog
// here either; the Reload Settings item re-reads the settings file after
// the user edits it.
package tray

import (
	"context"
	"strings"
	"sync"

	"github.com/getlantern/systray"

	"github.com/quabes/trainbar/internal/shell"
)

const appTitle = "trainbar"

// Tray adapts the systray event loop to the shell contract.
type Tray struct {
	hooks shell.Hooks

	mu     sync.Mutex
	status string
	ready  bool
}

// Ensure Tray implements the shell contract at compile time.
var _ shell.Shell = (*Tray)(nil)

// New builds a tray shell. Run must be called from the main goroutine;
// systray owns the process's main thread on some platforms.
func New(hooks shell.Hooks) *Tray {
	return &Tray{hooks: hooks}
}

// SetStatusText publishes the latest summary to the tray tooltip. Calls
// made before the tray is ready are buffered and applied on startup.
func (t *Tray) SetStatusText(text string) {
	t.mu.Lock()
	t.status = text
	ready := t.ready
	t.mu.Unlock()
	if ready {
		applyStatus(text)
	}
}

// Run starts the systray loop and blocks until the context is cancelled
// or the user picks Quit.
func (t *Tray) Run(ctx context.Context) error {
	systray.Run(func() { t.onReady(ctx) }, func() {})
	return nil
}

func (t *Tray) onReady(ctx context.Context) {
	systray.SetTitle(appTitle)

	mHeader := systray.AddMenuItem(appTitle, "Latest training stats")
	mHeader.Disable()
	systray.AddSeparator()
	mStats := systray.AddMenuItem("Today's Stats", "Fetch today's stats now")
	mRefresh := systray.AddMenuItem("Refresh", "Refresh the status text")
	mReload := systray.AddMenuItem("Reload Settings", "Re-read the settings file")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit trainbar")

	t.mu.Lock()
	t.ready = true
	pending := t.status
	t.mu.Unlock()
	if pending != "" {
		applyStatus(pending)
		mHeader.SetTitle(firstLine(pending))
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				systray.Quit()
				return
			case <-mQuit.ClickedCh:
				systray.Quit()
				return
			case <-mStats.ClickedCh:
				// Blocking fetch; keep it off the menu loop.
				go func() {
					text := t.hooks.FetchSummary(ctx)
					t.SetStatusText(text)
					mHeader.SetTitle(firstLine(text))
				}()
			case <-mRefresh.ClickedCh:
				t.hooks.RefreshNow()
			case <-mReload.ClickedCh:
				t.hooks.ReloadCredentials()
			}
		}
	}()
}

func applyStatus(text string) {
	systray.SetTooltip(text)
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
