package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI and the on-screen placard.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Panels
	SurfaceAlt string // Focused input background

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Placard colors
	Frame      string // Outer frame of the card
	Banner     string // Header band behind classification and danger level
	BannerText string
	Danger2    string // Danger level text on the banner
	BarFrom    string // Stat bar gradient start
	BarTo      string // Stat bar gradient end
	FunFact    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FocusedInput: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),

		ErrorPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.Danger)).
			Padding(0, 2).
			Align(lipgloss.Center),

		Card: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.Frame)),

		Banner: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Banner)).
			Foreground(lipgloss.Color(t.BannerText)).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Banner)).
			Foreground(lipgloss.Color(t.BannerText)).
			Bold(true).
			Padding(0, 1),

		DangerLevel: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Banner)).
			Foreground(lipgloss.Color(t.Danger2)).
			Bold(true),

		FunFact: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FunFact)).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Italic(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Form
	Title        lipgloss.Style
	Label        lipgloss.Style
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
	Panel        lipgloss.Style
	ErrorPanel   lipgloss.Style

	// Placard
	Card        lipgloss.Style
	Banner      lipgloss.Style
	Badge       lipgloss.Style
	DangerLevel lipgloss.Style
	FunFact     lipgloss.Style

	Footer lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Savanna":      savannaTheme(),
	"Night Safari": nightSafariTheme(),
	"Rainforest":   rainforestTheme(),
}

var themeOrder = []string{"Savanna", "Night Safari", "Rainforest"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return savannaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func savannaTheme() Theme {
	// Zoo signage greens and browns, same palette as the exported PNG.
	return Theme{
		Name: "Savanna",

		Background: "#1b1a17",
		Surface:    "#262420",
		SurfaceAlt: "#302d27",

		Border:      "#5d4037", // brown 700
		BorderFocus: "#8bc34a", // light green 500

		Text:    "#f5f1e8",
		Muted:   "#bdb5a6",
		Faint:   "#8a8275",
		Accent:  "#8bc34a",
		Success: "#66bb6a",
		Warning: "#ffb74d",
		Danger:  "#ef5350",

		Frame:      "#3e2723", // brown 900
		Banner:     "#2c5e2e",
		BannerText: "#ffffff",
		Danger2:    "#ffeb3b", // yellow 500
		BarFrom:    "#2c5e2e",
		BarTo:      "#8bc34a",
		FunFact:    "#ef6c00", // orange 800
	}
}

func nightSafariTheme() Theme {
	// Moonlit blues with lantern accents.
	return Theme{
		Name: "Night Safari",

		Background: "#0b1220",
		Surface:    "#111a2e",
		SurfaceAlt: "#1a2540",

		Border:      "#2c3e63",
		BorderFocus: "#7aa2f7",

		Text:    "#dbe4ff",
		Muted:   "#94a3c8",
		Faint:   "#64739a",
		Accent:  "#7aa2f7",
		Success: "#9ece6a",
		Warning: "#e0af68",
		Danger:  "#f7768e",

		Frame:      "#3b4261",
		Banner:     "#1f2d4d",
		BannerText: "#dbe4ff",
		Danger2:    "#e0af68",
		BarFrom:    "#3d59a1",
		BarTo:      "#7dcfff",
		FunFact:    "#ff9e64",
	}
}

func rainforestTheme() Theme {
	// Canopy greens over a damp teal floor.
	return Theme{
		Name: "Rainforest",

		Background: "#0f1a14",
		Surface:    "#15241b",
		SurfaceAlt: "#1d3124",

		Border:      "#2f5d43",
		BorderFocus: "#4fd1a5",

		Text:    "#e4f2e9",
		Muted:   "#a3c2ae",
		Faint:   "#6f8f7a",
		Accent:  "#4fd1a5",
		Success: "#7bd88f",
		Warning: "#f2c14e",
		Danger:  "#ff6b6b",

		Frame:      "#1e3a2a",
		Banner:     "#14532d",
		BannerText: "#ecfdf5",
		Danger2:    "#fde047",
		BarFrom:    "#15803d",
		BarTo:      "#a3e635",
		FunFact:    "#fb923c",
	}
}
