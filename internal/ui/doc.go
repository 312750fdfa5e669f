// Package ui provides the Bubble Tea interface for exhibit.
//
// # Architecture Overview
//
// Model is a tea.Model that renders whatever state.Machine currently holds.
// The machine decides which view is legal; the model only turns key presses
// into machine calls and background commands, and turns the results back
// into machine calls.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key handling and Run
//   - form.go: the three-field form (two textinputs and a textarea)
//   - card.go: the on-screen placard with progress-bar stats
//   - view.go: header, error panel, loading line, result and footer
//   - commands.go: generation, loading-tick and export commands
//   - keys.go, help.go: bindings, footer help and the help overlay
//   - theme.go: colour themes, cycled with T and stored in prefs
//
// # Views
//
//   - Idle: the form
//   - Error: the classified error message above the form
//   - Loading: a spinner and a loading message rotating every 2.5s
//   - Result: the placard with save (s) and new placard (r) actions
//
// # Event Flow
//
//  1. Submitting the form calls Machine.Submit, which returns an attempt
//     number. The model starts the generation command, a loading tick and
//     the spinner, all tagged with or gated on that attempt.
//  2. generatedMsg is applied with Succeed or Fail. The machine drops
//     completions for any attempt but the current one.
//  3. loadingTickMsg reschedules itself only while Machine.Tick accepts it,
//     so leaving Loading stops the ticker.
//  4. Export runs in a command; failures show the advisory and the view
//     stays on the placard.
//
// # Key Bindings
//
// While the form has focus, printable keys are always text. Use f1 for help
// and ctrl+t for themes there.
//
//   - tab/shift+tab: move between fields
//   - enter: next field; submits on the last field
//   - ctrl+s: submit from any field
//   - s: save the placard as PNG
//   - r: start a new placard (inputs are kept)
//   - T or ctrl+t: cycle theme
//   - ? or f1: toggle help
//   - esc (form), ctrl+c: quit
package ui
