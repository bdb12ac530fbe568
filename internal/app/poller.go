package app

import (
	"context"
	"log"
	"time"

	"github.com/quabes/trainbar/internal/intervals"
	"github.com/quabes/trainbar/internal/state"
)

const defaultPollInterval = 600 * time.Second

// StartPoller launches a background goroutine that refreshes the store and
// the status sink at a fixed cadence. It returns immediately and stops when
// ctx is cancelled. Fetches are sequential: a slow fetch delays the next
// tick rather than overlapping it.
func StartPoller(ctx context.Context, store *state.Store, client *intervals.Client, sink func(string), interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			refresh(ctx, store, client, sink)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// refresh performs one poll cycle: fetch today's summary, record it in the
// store, and publish it to the sink. Failures are logged and published as
// the fallback text; they never stop the poller.
func refresh(ctx context.Context, store *state.Store, client *intervals.Client, sink func(string)) {
	summary, err := client.TodaySummary(ctx)
	if err != nil {
		log.Printf("stats poll failed: %v", err)
	}
	store.Update(summary, err)
	if sink != nil {
		sink(summary)
	}
}
