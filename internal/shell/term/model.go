package term

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quabes/trainbar/internal/shell"
	"github.com/quabes/trainbar/internal/state"
)

const defaultUITick = time.Second

// view represents the current active view.
type view int

const (
	viewStats view = iota
	viewSettings
)

// Options configure the terminal shell.
type Options struct {
	Store  *state.Store
	Hooks  shell.Hooks
	UITick time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	store  *state.Store
	hooks  shell.Hooks
	uiTick time.Duration

	keys   keyMap
	styles Styles

	currentView view
	width       int
	height      int

	snapshot state.Snapshot
	form     settingsForm
}

type tickMsg time.Time

type snapshotMsg state.Snapshot

type statusMsg string

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	uiTick := opts.UITick
	if uiTick <= 0 {
		uiTick = defaultUITick
	}
	return Model{
		store:       opts.Store,
		hooks:       opts.Hooks,
		uiTick:      uiTick,
		keys:        defaultKeyMap(),
		styles:      defaultTheme().Styles(),
		currentView: viewStats,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.uiTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.uiTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case statusMsg:
		m.snapshot.Summary = string(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.currentView == viewSettings {
		return m.handleSettingsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		if m.hooks.RefreshNow != nil {
			m.hooks.RefreshNow()
		}
		return m, nil
	case key.Matches(msg, m.keys.Settings):
		if m.hooks.Credentials != nil {
			m.form = newSettingsForm(m.hooks.Credentials())
			m.currentView = viewSettings
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.currentView = viewStats
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if m.hooks.SaveCredentials != nil {
			m.hooks.SaveCredentials(m.form.credentials())
		}
		m.currentView = viewStats
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.form = m.form.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.form = m.form.moveFocus(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.currentView == viewSettings {
		return m.form.view(m.styles)
	}

	out := m.styles.Title.Render("trainbar") + "\n"

	summary := m.snapshot.Summary
	if summary == "" {
		summary = "No data yet"
	}
	out += m.styles.Summary.Render(summary) + "\n"

	out += m.styles.StatusBar.Render(m.statusLine())
	return out
}

func (m Model) statusLine() string {
	line := "r refresh · s settings · q quit"
	if m.snapshot.IsOffline() {
		return m.styles.Danger.Render("offline") + "  " + line
	}
	if !m.snapshot.LastUpdated.IsZero() {
		line = fmt.Sprintf("updated %s  ·  %s", m.snapshot.LastUpdated.Format("15:04:05"), line)
	}
	return line
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Term adapts a Bubble Tea program to the shell contract.
type Term struct {
	opts Options

	mu      sync.Mutex
	program *tea.Program
	pending string
}

// Ensure Term implements the shell contract at compile time.
var _ shell.Shell = (*Term)(nil)

// NewTerm builds a terminal shell.
func NewTerm(opts Options) *Term {
	return &Term{opts: opts}
}

// SetStatusText pushes the latest summary into the running program. Calls
// made before Run are buffered; the model also picks up fresh store
// snapshots on its tick, so a dropped push only delays display by a tick.
func (t *Term) SetStatusText(text string) {
	t.mu.Lock()
	t.pending = text
	p := t.program
	t.mu.Unlock()
	if p != nil {
		p.Send(statusMsg(text))
	}
}

// Run starts the Bubble Tea program and blocks until the context is
// cancelled or the user quits.
func (t *Term) Run(ctx context.Context) error {
	p := tea.NewProgram(New(t.opts), tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	_, err := p.Run()
	if ctx.Err() != nil {
		return nil
	}
	return err
}
