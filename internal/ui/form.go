package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/exhibit/internal/exhibit"
)

// field indexes the form inputs in tab order.
type field int

const (
	fieldName field = iota
	fieldHobby
	fieldWorry
	fieldCount
)

const blankHint = "この項目を入力してください。"

// Character limits per field.
const (
	nameLimit  = 40
	hobbyLimit = 120
	worryLimit = 400
)

// form holds the three placard inputs. Values survive errors and resets so
// the visitor can tweak and resubmit.
type form struct {
	name  textinput.Model
	hobby textinput.Model
	worry textarea.Model
	focus field

	// showHints is set after a submit with blank fields.
	showHints bool
}

func newForm() form {
	name := textinput.New()
	name.Placeholder = exhibit.Placeholders.Name
	name.CharLimit = nameLimit
	name.Prompt = ""

	hobby := textinput.New()
	hobby.Placeholder = exhibit.Placeholders.Hobby
	hobby.CharLimit = hobbyLimit
	hobby.Prompt = ""

	worry := textarea.New()
	worry.Placeholder = exhibit.Placeholders.Worry
	worry.CharLimit = worryLimit
	worry.ShowLineNumbers = false
	worry.Prompt = ""
	worry.SetHeight(3)

	f := form{name: name, hobby: hobby, worry: worry}
	f.focusField(fieldName)
	return f
}

// setWidth sizes every input to fit a box of width w, leaving room for the
// border, padding and cursor.
func (f *form) setWidth(w int) {
	w -= 5
	if w < 10 {
		w = 10
	}
	f.name.Width = w
	f.hobby.Width = w
	f.worry.SetWidth(w)
}

// focusField moves focus to i and returns the cursor blink command.
func (f *form) focusField(i field) tea.Cmd {
	f.name.Blur()
	f.hobby.Blur()
	f.worry.Blur()
	f.focus = i
	switch i {
	case fieldHobby:
		return f.hobby.Focus()
	case fieldWorry:
		return f.worry.Focus()
	default:
		f.focus = fieldName
		return f.name.Focus()
	}
}

func (f *form) next() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f *form) prev() tea.Cmd {
	return f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

// onLast reports whether the final field has focus.
func (f form) onLast() bool {
	return f.focus == fieldWorry
}

// input returns the current values.
func (f form) input() exhibit.UserInput {
	return exhibit.UserInput{
		Name:  f.name.Value(),
		Hobby: f.hobby.Value(),
		Worry: f.worry.Value(),
	}
}

// firstBlank returns the first empty field, or fieldCount when all are set.
func (f form) firstBlank() field {
	values := f.values()
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return field(i)
		}
	}
	return fieldCount
}

func (f form) values() [fieldCount]string {
	return [fieldCount]string{f.name.Value(), f.hobby.Value(), f.worry.Value()}
}

// update routes msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldHobby:
		f.hobby, cmd = f.hobby.Update(msg)
	case fieldWorry:
		f.worry, cmd = f.worry.Update(msg)
	}
	return cmd
}

// view renders labels, inputs and any blank-field hints.
func (f form) view(styles Styles, width int) string {
	labels := [fieldCount]string{exhibit.NameLabel, exhibit.HobbyLabel, exhibit.WorryLabel}
	inputs := [fieldCount]string{f.name.View(), f.hobby.View(), f.worry.View()}
	values := f.values()

	var b strings.Builder
	for i := field(0); i < fieldCount; i++ {
		b.WriteString(styles.AccentText.Render("• "))
		b.WriteString(styles.Label.Render(labels[i]))
		b.WriteString("\n")

		box := styles.Input
		if f.focus == i {
			box = styles.FocusedInput
		}
		b.WriteString(box.Width(width - 2).Render(inputs[i]))
		b.WriteString("\n")

		if f.showHints && strings.TrimSpace(values[i]) == "" {
			b.WriteString(styles.WarningText.Render("  " + blankHint))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	button := styles.Badge.Render(" " + exhibit.SubmitLabel + " ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, button))
	return b.String()
}
