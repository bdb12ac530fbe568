package intervals

import (
	"context"
	"log"
	"strconv"
	"strings"
)

const (
	// restActivity is shown when no event is scheduled or the events
	// endpoint cannot be reached.
	restActivity = "Rest"
	// fetchFailedText replaces the whole summary when the wellness fetch
	// fails; the caller displays it as-is.
	fetchFailedText = "Failed to fetch data"
)

// TodayActivity returns the name of today's first scheduled event, or
// "Rest" when nothing is scheduled. Transport errors, bad statuses, and
// malformed payloads also yield "Rest"; this endpoint is never fatal.
func (c *Client) TodayActivity(ctx context.Context) string {
	events, err := c.FetchEvents(ctx, c.today())
	if err != nil {
		log.Printf("activity fetch failed: %v", err)
		return restActivity
	}
	if len(events) == 0 || strings.TrimSpace(events[0].Name) == "" {
		return restActivity
	}
	return events[0].Name
}

// TodaySummary fetches today's wellness record and scheduled activity and
// renders them as the display summary. The returned string is always
// suitable for display: on failure it is the fixed fallback text and the
// error reports what went wrong.
func (c *Client) TodaySummary(ctx context.Context) (string, error) {
	wellness, err := c.FetchWellness(ctx, c.today())
	if err != nil {
		return fetchFailedText, err
	}
	stats := wellness.Daily()
	stats.Activity = c.TodayActivity(ctx)
	return stats.Render(), nil
}

// TodayStats is the fire-and-forget variant of TodaySummary: failures are
// logged and only the display string is returned.
func (c *Client) TodayStats(ctx context.Context) string {
	summary, err := c.TodaySummary(ctx)
	if err != nil {
		log.Printf("stats fetch failed: %v", err)
	}
	return summary
}

// Render produces the fixed-layout summary: a "Today:" header followed by
// a blank line and eight labeled metric lines.
func (s DailyStats) Render() string {
	var b strings.Builder
	b.WriteString("Today: ")
	b.WriteString(s.Activity)
	b.WriteString("\n\n")
	b.WriteString("CTL: ")
	b.WriteString(strconv.Itoa(s.CTL))
	b.WriteString("\nATL: ")
	b.WriteString(strconv.Itoa(s.ATL))
	b.WriteString("\nForm: ")
	b.WriteString(formatDecimal(s.Form))
	b.WriteString("\nRamp Rate: ")
	b.WriteString(formatDecimal(s.RampRate))
	b.WriteString("\nResting HR: ")
	b.WriteString(strconv.Itoa(s.RestingHR))
	b.WriteString("\nHRV: ")
	b.WriteString(strconv.Itoa(s.HRV))
	b.WriteString("\nSleep Score: ")
	b.WriteString(strconv.Itoa(s.SleepScore))
	b.WriteString("\nSteps: ")
	b.WriteString(strconv.Itoa(s.Steps))
	return b.String()
}

// formatDecimal prints a two-decimal value without trailing zeros, so
// whole numbers render as "20" and fractions as "1.25".
func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
