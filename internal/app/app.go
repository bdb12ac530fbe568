package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/quabes/trainbar/internal/config"
	"github.com/quabes/trainbar/internal/intervals"
	"github.com/quabes/trainbar/internal/settings"
	"github.com/quabes/trainbar/internal/shell"
	"github.com/quabes/trainbar/internal/shell/term"
	"github.com/quabes/trainbar/internal/shell/tray"
	"github.com/quabes/trainbar/internal/state"
)

// Options configure the trainbar application.
type Options struct {
	ConfigPath   string
	SettingsPath string // empty uses default ~/.config/trainbar/settings.json
	PollEvery    int    // seconds; zero uses the configured value
	Shell        string // "tray" or "term"; empty uses the configured value
}

// Run boots trainbar until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	creds := settings.Load(opts.SettingsPath)

	client, err := intervals.NewClient(cfg.BaseURL, creds)
	if err != nil {
		return fmt.Errorf("init intervals client: %w", err)
	}

	store := &state.Store{}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	sink := &statusSink{}
	h := hooks(ctx, store, client, opts.SettingsPath, sink.publish)

	sh, err := newShell(shellKind(cfg, opts), store, h)
	if err != nil {
		return err
	}
	sink.attach(sh.SetStatusText)

	StartPoller(ctx, store, client, sink.publish, interval)

	return sh.Run(ctx)
}

// statusSink fans published summaries out to the active shell. The shell
// is attached after construction because the hooks it needs are built
// first; publishes before attach are dropped, which is fine because the
// shell's first render reads the store anyway.
type statusSink struct {
	mu sync.Mutex
	fn func(string)
}

func (s *statusSink) attach(fn func(string)) {
	s.mu.Lock()
	s.fn = fn
	s.mu.Unlock()
}

func (s *statusSink) publish(text string) {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	if fn != nil {
		fn(text)
	}
}

func shellKind(cfg config.Config, opts Options) string {
	if opts.Shell != "" {
		return opts.Shell
	}
	return cfg.Shell
}

func newShell(kind string, store *state.Store, h shell.Hooks) (shell.Shell, error) {
	switch kind {
	case "tray":
		return tray.New(h), nil
	case "term":
		return term.NewTerm(term.Options{Store: store, Hooks: h}), nil
	default:
		return nil, fmt.Errorf("unknown shell %q (want tray or term)", kind)
	}
}

// hooks builds the shell-facing callbacks. Blocking fetches run on the
// caller's goroutine; RefreshNow and the credential appliers spawn their
// own so shell event loops never wait on the network.
func hooks(ctx context.Context, store *state.Store, client *intervals.Client, settingsPath string, sink func(string)) shell.Hooks {
	var h shell.Hooks

	h.FetchSummary = func(fctx context.Context) string {
		if fctx == nil {
			fctx = ctx
		}
		return client.TodayStats(fctx)
	}

	h.RefreshNow = func() {
		go refresh(ctx, store, client, sink)
	}

	h.Credentials = client.Credentials

	h.SaveCredentials = func(creds intervals.Credentials) {
		if err := settings.Save(settingsPath, creds); err != nil {
			log.Printf("settings save failed: %v", err)
		}
		client.SetCredentials(creds)
		go refresh(ctx, store, client, sink)
	}

	h.ReloadCredentials = func() {
		client.SetCredentials(settings.Load(settingsPath))
		go refresh(ctx, store, client, sink)
	}

	return h
}
