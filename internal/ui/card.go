package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/exhibit/internal/exhibit"
)

// newStatBar builds the bar used for every stat, coloured for theme.
func newStatBar(theme Theme) progress.Model {
	return progress.New(
		progress.WithGradient(theme.BarFrom, theme.BarTo),
		progress.WithoutPercentage(),
		progress.WithFillCharacters('█', '░'),
	)
}

// renderCard draws the placard for name and d at the given total width.
func renderCard(name string, d exhibit.Data, width int, theme Theme, bar progress.Model) string {
	styles := theme.Styles()
	inner := maxInt(width-2, 20)
	textWidth := inner - 4

	var b strings.Builder

	// Name and scientific name.
	b.WriteString(styles.Text.Bold(true).Width(textWidth).Render(name))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Italic(true).Width(textWidth).Render(d.ScientificName))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", textWidth)))
	b.WriteString("\n\n")

	// Keeper's commentary.
	b.WriteString(styles.Badge.Render(exhibit.KeeperCaption))
	b.WriteString("\n")
	b.WriteString(styles.Text.Width(textWidth).Render(d.Description))
	b.WriteString("\n\n")

	// Stats.
	bar.Width = textWidth
	for _, stat := range d.Stats.Values() {
		label := styles.MutedText.Bold(true).Render(stat.Label)
		value := styles.Text.Bold(true).Render(statText(stat.Value))
		b.WriteString(spread(label, value, textWidth))
		b.WriteString("\n")
		b.WriteString(bar.ViewAs(exhibit.Percent(stat.Value)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Fun fact.
	b.WriteString(styles.FunFact.Render("💡 " + exhibit.FunFactCaption))
	b.WriteString("\n")
	b.WriteString(styles.Text.Width(textWidth).Render(d.FunFact))

	body := lipgloss.NewStyle().Padding(1, 2).Width(inner).Render(b.String())
	return styles.Card.Width(inner).Render(renderBanner(d, inner, theme) + "\n" + body)
}

// renderBanner draws the header band: classification badge on the left,
// danger level on the right.
func renderBanner(d exhibit.Data, width int, theme Theme) string {
	styles := theme.Styles()
	bg := NewBgStyle(theme.Banner)

	danger := bg.Render(exhibit.DangerCaption+d.DangerLevel, styles.DangerLevel)
	room := width - lipgloss.Width(danger) - 3
	badge := bg.Render(" "+truncate(d.Classification, maxInt(room, 4)), styles.Banner.Padding(0))
	return bg.Spread(badge, danger+bg.Spaces(1), width)
}

// RenderCard draws the placard outside a running program, for line-oriented
// output. Unknown theme names fall back to the default theme.
func RenderCard(name string, d exhibit.Data, width int, themeName string) string {
	theme := GetTheme(themeName)
	return renderCard(name, d, width, theme, newStatBar(theme))
}
