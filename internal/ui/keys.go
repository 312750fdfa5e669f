package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/exhibit/internal/state"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Form
	Next   key.Binding
	Prev   key.Binding
	Enter  key.Binding
	Submit key.Binding
	Escape key.Binding

	// Placard
	Export key.Binding
	Reset  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?/f1", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T", "ctrl+t"),
			key.WithHelp("T/ctrl+t", "Cycle theme"),
		),

		// Form
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Next / submit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Design placard"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Quit"),
		),

		// Placard
		Export: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Save as PNG"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "New placard"),
		),
	}
}

// ShortHelp returns key bindings for the footer. Disabled bindings are
// skipped by the help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Export, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Enter, k.Submit, k.Escape},
		{k.Export, k.Reset},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// forKind enables only the bindings that do something in the given view.
func (k keyMap) forKind(kind state.Kind) keyMap {
	form := kind == state.KindIdle || kind == state.KindError
	result := kind == state.KindResult

	k.Next.SetEnabled(form)
	k.Prev.SetEnabled(form)
	k.Enter.SetEnabled(form)
	k.Submit.SetEnabled(form)
	k.Escape.SetEnabled(form)
	k.Export.SetEnabled(result)
	k.Reset.SetEnabled(result)
	return k
}

// typing reports whether msg is text destined for a form field. Single-letter
// shortcuts never fire while the form has focus.
func typing(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}
