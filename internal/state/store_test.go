package state

import (
	"errors"
	"testing"
)

func TestStore_UpdateAndSnapshot(t *testing.T) {
	store := &Store{}

	snap := store.Snapshot()
	if snap.HasData || snap.Summary != "" {
		t.Fatalf("zero store snapshot = %+v, want empty", snap)
	}

	store.Update("Today: Rest\n\nCTL: 0", nil)
	snap = store.Snapshot()
	if !snap.HasData {
		t.Errorf("HasData = false after successful update")
	}
	if snap.Summary != "Today: Rest\n\nCTL: 0" {
		t.Errorf("Summary = %q, want updated text", snap.Summary)
	}
	if snap.LastError != nil || snap.ConsecutiveFailures != 0 {
		t.Errorf("snapshot = %+v, want no error state", snap)
	}
	if snap.LastUpdated.IsZero() {
		t.Errorf("LastUpdated is zero after update")
	}
}

func TestStore_FailuresAccumulateAndReset(t *testing.T) {
	store := &Store{}
	fetchErr := errors.New("boom")

	store.Update("Failed to fetch data", fetchErr)
	store.Update("Failed to fetch data", fetchErr)

	snap := store.Snapshot()
	if snap.ConsecutiveFailures != 2 {
		t.Errorf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}
	if !snap.IsOffline() {
		t.Errorf("IsOffline() = false after 2 failures, want true")
	}
	if snap.Summary != "Failed to fetch data" {
		t.Errorf("Summary = %q, want fallback text published", snap.Summary)
	}
	if !errors.Is(snap.LastError, fetchErr) {
		t.Errorf("LastError = %v, want %v", snap.LastError, fetchErr)
	}

	store.Update("Today: Rest", nil)
	snap = store.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Errorf("snapshot = %+v, want failure streak reset", snap)
	}
	if snap.LastError != nil {
		t.Errorf("LastError = %v, want nil after success", snap.LastError)
	}
}

func TestSnapshot_OfflineThreshold(t *testing.T) {
	tests := []struct {
		failures int
		want     bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{5, true},
	}
	for _, tt := range tests {
		snap := Snapshot{ConsecutiveFailures: tt.failures}
		if got := snap.IsOffline(); got != tt.want {
			t.Errorf("IsOffline() with %d failures = %v, want %v", tt.failures, got, tt.want)
		}
	}
}
