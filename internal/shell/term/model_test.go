package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quabes/trainbar/internal/intervals"
	"github.com/quabes/trainbar/internal/shell"
	"github.com/quabes/trainbar/internal/state"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestView_ShowsSummaryFromSnapshot(t *testing.T) {
	store := &state.Store{}
	store.Update("Today: Rest\n\nCTL: 50", nil)

	m := New(Options{Store: store})
	updated, _ := m.Update(snapshotMsg(store.Snapshot()))
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "CTL: 50") {
		t.Errorf("view = %q, want summary text", view)
	}
	if !strings.Contains(view, "r refresh") {
		t.Errorf("view = %q, want help line", view)
	}
}

func TestView_EmptyAndOfflineStates(t *testing.T) {
	m := New(Options{Store: &state.Store{}})
	if view := m.View(); !strings.Contains(view, "No data yet") {
		t.Errorf("view = %q, want No data yet placeholder", view)
	}

	updated, _ := m.Update(snapshotMsg(state.Snapshot{Summary: "Failed to fetch data", ConsecutiveFailures: 3}))
	m = updated.(Model)
	if view := m.View(); !strings.Contains(view, "offline") {
		t.Errorf("view = %q, want offline flag", view)
	}
}

func TestStatusMsg_UpdatesSummaryImmediately(t *testing.T) {
	m := New(Options{Store: &state.Store{}})
	updated, _ := m.Update(statusMsg("Today: Long Run\n\nCTL: 61"))
	m = updated.(Model)
	if view := m.View(); !strings.Contains(view, "Today: Long Run") {
		t.Errorf("view = %q, want pushed status text", view)
	}
}

func TestHandleKey_QuitAndRefresh(t *testing.T) {
	refreshed := false
	m := New(Options{
		Store: &state.Store{},
		Hooks: shell.Hooks{RefreshNow: func() { refreshed = true }},
	})

	_, cmd := m.Update(keyMsg('q'))
	if cmd == nil {
		t.Fatalf("q produced nil cmd, want quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q cmd = %T, want tea.QuitMsg", cmd())
	}

	if _, cmd = m.Update(keyMsg('r')); cmd != nil {
		t.Errorf("r produced cmd %v, want hook call only", cmd)
	}
	if !refreshed {
		t.Errorf("RefreshNow hook not called on r")
	}
}

func TestSettingsForm_EditAndSave(t *testing.T) {
	var saved intervals.Credentials
	m := New(Options{
		Store: &state.Store{},
		Hooks: shell.Hooks{
			Credentials: func() intervals.Credentials {
				return intervals.Credentials{Username: "old", Password: "pw", AthleteID: "1"}
			},
			SaveCredentials: func(c intervals.Credentials) { saved = c },
		},
	})

	updated, _ := m.Update(keyMsg('s'))
	m = updated.(Model)
	if m.currentView != viewSettings {
		t.Fatalf("currentView = %v after s, want settings", m.currentView)
	}
	if !strings.Contains(m.View(), "Athlete ID:") {
		t.Errorf("settings view = %q, want athlete field", m.View())
	}

	// Focused username field receives typed runes.
	updated, _ = m.Update(keyMsg('X'))
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.currentView != viewStats {
		t.Fatalf("currentView = %v after save, want stats", m.currentView)
	}
	if saved.Username != "oldX" {
		t.Errorf("saved username = %q, want %q", saved.Username, "oldX")
	}
	if saved.Password != "pw" || saved.AthleteID != "1" {
		t.Errorf("saved = %+v, want untouched password and athlete id", saved)
	}
}

func TestSettingsForm_CancelDiscards(t *testing.T) {
	saveCalls := 0
	m := New(Options{
		Store: &state.Store{},
		Hooks: shell.Hooks{
			Credentials:     func() intervals.Credentials { return intervals.Credentials{} },
			SaveCredentials: func(intervals.Credentials) { saveCalls++ },
		},
	})

	updated, _ := m.Update(keyMsg('s'))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if m.currentView != viewStats {
		t.Fatalf("currentView = %v after esc, want stats", m.currentView)
	}
	if saveCalls != 0 {
		t.Errorf("SaveCredentials called %d times on cancel, want 0", saveCalls)
	}
}

func TestSettingsForm_FocusCycles(t *testing.T) {
	f := newSettingsForm(intervals.Credentials{})
	if f.focus != fieldUsername {
		t.Fatalf("initial focus = %d, want username", f.focus)
	}
	f = f.moveFocus(1)
	if f.focus != fieldPassword {
		t.Fatalf("focus = %d after next, want password", f.focus)
	}
	f = f.moveFocus(-1)
	f = f.moveFocus(-1)
	if f.focus != fieldAthleteID {
		t.Fatalf("focus = %d after wrapping back, want athlete id", f.focus)
	}
}
