package term

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors for the terminal shell.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Accent  string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Summary: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Padding(1, 2),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
	}
}

// Styles holds the rendered lipgloss styles used by the views.
type Styles struct {
	Title     lipgloss.Style
	Summary   lipgloss.Style
	Label     lipgloss.Style
	StatusBar lipgloss.Style
	Warning   lipgloss.Style
	Danger    lipgloss.Style
}

func defaultTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:    "Nightfox",
		Text:    "#cdcecf",
		Muted:   "#71839b",
		Accent:  "#63cdcf",
		Warning: "#dbc074",
		Danger:  "#c94f6d",
	}
}
