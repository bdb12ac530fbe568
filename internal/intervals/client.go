package intervals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// StatsFetcher defines the interface for fetching daily stats summaries.
// This interface is implemented by *Client and can be used for testing.
type StatsFetcher interface {
	TodayActivity(ctx context.Context) string
	TodayStats(ctx context.Context) string
	TodaySummary(ctx context.Context) (string, error)
}

// Ensure Client implements StatsFetcher at compile time.
var _ StatsFetcher = (*Client)(nil)

// Credentials authenticate requests against the intervals.icu API and
// select the athlete whose data is fetched. The username/password pair is
// sent as HTTP Basic auth.
type Credentials struct {
	Username  string
	Password  string
	AthleteID string
}

// Client talks to the intervals.icu HTTP API for a single athlete.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string

	mu    sync.RWMutex
	creds Credentials

	now func() time.Time
}

const (
	defaultBaseURL   = "https://intervals.icu"
	defaultUserAgent = "trainbar/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given API base URL and credentials.
// An empty baseURL uses the public intervals.icu host.
func NewClient(baseURL string, creds Credentials) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		creds:     creds,
		now:       time.Now,
	}, nil
}

// Credentials returns the credentials currently in use.
func (c *Client) Credentials() Credentials {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.creds
}

// SetCredentials replaces the credentials used for subsequent requests.
// Safe to call while fetches are in flight; in-flight requests keep the
// values they started with.
func (c *Client) SetCredentials(creds Credentials) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds = creds
}

// FetchEvents retrieves the athlete's scheduled events for the given day
// (ISO-8601 date string).
func (c *Client) FetchEvents(ctx context.Context, day string) ([]Event, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	creds := c.Credentials()
	// The events route appends the date to the path with no separator.
	// TODO: confirm this construction against the live API; a missing "/"
	// here looks suspicious but is the deployed contract.
	rel := &url.URL{Path: "/api/v1/athlete/" + creds.AthleteID + "/events" + day}
	var payload []Event
	if err := c.doURL(ctx, creds, rel, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchWellness retrieves the athlete's wellness record for the given day
// (ISO-8601 date string). Fields absent from the payload are zero.
func (c *Client) FetchWellness(ctx context.Context, day string) (Wellness, error) {
	if c == nil {
		return Wellness{}, fmt.Errorf("client is nil")
	}
	creds := c.Credentials()
	rel := &url.URL{Path: "/api/v1/athlete/" + creds.AthleteID + "/wellness/" + day}
	var payload Wellness
	if err := c.doURL(ctx, creds, rel, &payload); err != nil {
		return Wellness{}, err
	}
	return payload, nil
}

func (c *Client) doURL(ctx context.Context, creds Credentials, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.SetBasicAuth(creds.Username, creds.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// today returns the current local calendar date in ISO-8601 form.
func (c *Client) today() string {
	return c.now().Format("2006-01-02")
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
