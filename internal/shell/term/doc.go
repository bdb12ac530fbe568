// Package term is the terminal presentation shell, built on Bubble Tea.
//
// The model renders the latest stats summary from the shared state store,
// refreshing on a one-second tick, and accepts pushed status text from the
// poller between ticks. Two views exist: the stats view and a settings
// form (bubbles/textinput fields for username, API key, and athlete ID)
// that saves through the shell hooks.
//
// Key bindings: r refresh, s settings, q quit; the form uses tab/shift+tab
// to move between fields, enter to save, esc to cancel.
package term
