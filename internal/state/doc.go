// Package state provides the shared snapshot store for trainbar.
//
// # Overview
//
// The store is the coordination point between the background poller and
// whichever presentation shell is running:
//
//	Producer (Poller):              Consumer (Shell):
//	┌──────────────────┐           ┌──────────────────┐
//	│ TodaySummary()   │           │                  │
//	│       ↓          │  (mutex)  │ store.Snapshot() │
//	│ store.Update()   │──────────→│       ↓          │
//	│   repeat...      │           │ render status    │
//	└──────────────────┘           └──────────────────┘
//
// Snapshots carry the latest rendered summary plus freshness metadata
// (last update time, last error, consecutive failure count). There is no
// queue and no history: each update overwrites the previous one, because
// only the latest value is ever displayed.
//
// IsOffline reports two or more consecutive poll failures, which shells
// use to flag stale data without interrupting the user.
package state
