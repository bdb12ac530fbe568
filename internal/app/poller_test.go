package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/quabes/trainbar/internal/intervals"
	"github.com/quabes/trainbar/internal/state"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *intervals.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := intervals.NewClient(server.URL, intervals.Credentials{
		Username: "u", Password: "p", AthleteID: "1",
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if strings.Contains(r.URL.Path, "/wellness") {
		_ = json.NewEncoder(w).Encode(intervals.Wellness{CTL: 50, ATL: 30})
		return
	}
	_ = json.NewEncoder(w).Encode([]intervals.Event{{Name: "Tempo Run"}})
}

func TestRefresh_PublishesToStoreAndSink(t *testing.T) {
	client := newTestClient(t, okHandler)
	store := &state.Store{}

	var published string
	refresh(context.Background(), store, client, func(text string) { published = text })

	snap := store.Snapshot()
	if !snap.HasData || snap.ConsecutiveFailures != 0 {
		t.Fatalf("snapshot = %+v, want successful update", snap)
	}
	if !strings.HasPrefix(snap.Summary, "Today: Tempo Run\n\n") {
		t.Errorf("Summary = %q, want Tempo Run header", snap.Summary)
	}
	if published != snap.Summary {
		t.Errorf("sink got %q, store has %q; want identical publish", published, snap.Summary)
	}
}

func TestRefresh_FailurePublishesFallbackText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	store := &state.Store{}

	var published string
	refresh(context.Background(), store, client, func(text string) { published = text })

	snap := store.Snapshot()
	if snap.ConsecutiveFailures != 1 || snap.LastError == nil {
		t.Fatalf("snapshot = %+v, want recorded failure", snap)
	}
	if published != "Failed to fetch data" {
		t.Errorf("sink got %q, want fallback text", published)
	}
}

func TestRefresh_NilSinkIsAllowed(t *testing.T) {
	client := newTestClient(t, okHandler)
	store := &state.Store{}

	refresh(context.Background(), store, client, nil)

	if !store.Snapshot().HasData {
		t.Fatalf("store not updated with nil sink")
	}
}

func TestStartPoller_TicksAndStopsOnCancel(t *testing.T) {
	var polls atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/wellness") {
			polls.Add(1)
		}
		okHandler(w, r)
	})
	store := &state.Store{}

	ctx, cancel := context.WithCancel(context.Background())
	StartPoller(ctx, store, client, nil, 10*time.Millisecond)

	deadline := time.After(2 * time.Second)
	for polls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("poller made %d polls, want at least 3", polls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	time.Sleep(50 * time.Millisecond)
	settled := polls.Load()
	time.Sleep(100 * time.Millisecond)
	if got := polls.Load(); got > settled+1 {
		t.Errorf("polls kept accumulating after cancel: %d -> %d", settled, got)
	}
}
