// Package intervals provides an HTTP client for the intervals.icu API.
//
// # Overview
//
// This package fetches one athlete's daily training-load and wellness data
// and renders it into the fixed text summary displayed by the presentation
// shells. It handles HTTP communication, JSON decoding, and the derivation
// of display stats from raw wellness values.
//
// # API Endpoints
//
// Two read-only endpoints are used, both keyed by athlete ID and the local
// ISO-8601 date:
//
//   - GET /api/v1/athlete/<id>/events<date>: today's scheduled events
//   - GET /api/v1/athlete/<id>/wellness/<date>: today's wellness record
//
// Note that the events route embeds the date with no path separator; that
// is the deployed contract and is reproduced verbatim.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Authenticate with HTTP Basic auth from the stored credentials
//   - Set Accept: application/json and a trainbar User-Agent
//   - Have a fixed 10-second timeout
//   - Return wrapped errors with context about what failed
//
// # Summary Semantics
//
// TodayActivity degrades to "Rest" on any failure or when no event is
// scheduled. TodaySummary returns the rendered stats block on success and
// the literal "Failed to fetch data" alongside the error on failure, so a
// caller always has something displayable. Each call is a single
// best-effort attempt; retry policy belongs to the poller's cadence.
//
// # Derived Stats
//
// Wellness values arrive as fractional numbers. The display view truncates
// CTL, ATL, resting HR, HRV, sleep score, and steps to integers, computes
// Form as CTL minus ATL, and keeps Form and Ramp Rate at two decimals.
// Missing payload fields decode to zero.
//
// # Thread Safety
//
// Client is safe for concurrent use. Credentials may be swapped with
// SetCredentials while fetches are in flight; each request reads the
// credentials once at its start.
package intervals
