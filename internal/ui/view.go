package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/exhibit/internal/exhibit"
	"github.com/five82/exhibit/internal/state"
)

const savedPrefix = "保存しました: "

func (m Model) renderHeader(width int) string {
	styles := m.theme.Styles()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Render(styles.Title.Render(exhibit.Headline)))
	b.WriteString("\n")
	b.WriteString(center.Render(styles.FaintText.Render(strings.ToUpper(exhibit.Tagline))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderForm(width int) string {
	styles := m.theme.Styles()
	return styles.Panel.Width(width - 2).Render(m.form.view(styles, m.formWidth()))
}

func (m Model) renderError(message string, width int) string {
	styles := m.theme.Styles()
	content := styles.DangerText.Render(exhibit.ErrorHeading) + "\n" + message
	return styles.ErrorPanel.Width(width-2).Render(content) + "\n"
}

func (m Model) renderLoading(width int) string {
	styles := m.theme.Styles()
	line := m.spinner.View() + " " + styles.AccentText.Bold(true).Render(m.machine.LoadingMessage())
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(3, 0).
		Render(line)
}

func (m Model) renderResult(res state.Result, width int) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(renderCard(res.Input.Name, res.Data, width, m.theme, m.bar))
	b.WriteString("\n\n")

	exportLabel := "🖼️ " + exhibit.ExportLabel
	if m.exporting {
		exportLabel = "🎨 " + exhibit.ExportingLabel
	}
	actions := styles.Badge.Render("s") + " " + styles.Text.Render(exportLabel) +
		"   " + styles.FaintText.Render("r") + " " + styles.MutedText.Render(exhibit.ResetLabel)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, actions))

	if m.savedPath != "" {
		b.WriteString("\n")
		path := truncateMiddle(m.savedPath, width-lipgloss.Width(savedPrefix))
		b.WriteString(styles.SuccessText.Render(savedPrefix + path))
	}
	if m.advisory != "" {
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Width(width).Render(m.advisory))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderFooter(width int) string {
	styles := m.theme.Styles()
	keys := m.keys.forKind(m.machine.Kind())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(spread(
		styles.Footer.Render("© "+exhibit.Footer),
		styles.FaintText.Render(m.theme.Name),
		width,
	))
	return b.String()
}
