package ui

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/five82/exhibit/internal/exhibit"
	"github.com/five82/exhibit/internal/export"
	"github.com/five82/exhibit/internal/prefs"
	"github.com/five82/exhibit/internal/state"
)

// Generator produces placard data for a form submission.
type Generator interface {
	Generate(ctx context.Context, in exhibit.UserInput) (exhibit.Data, error)
}

// Exporter writes a placard image and returns its path.
type Exporter interface {
	Export(ctx context.Context, card export.Card) (string, error)
}

// ViewObserver is told about every view change.
type ViewObserver interface {
	ObserveView(view string)
}

var errNoGenerator = errors.New("generator is not configured")

// Content width bounds, in cells.
const (
	maxContentWidth = 72
	minContentWidth = 40
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Generator Generator
	Exporter  Exporter
	Machine   *state.Machine
	Logger    *log.Logger
	Observer  ViewObserver

	// Prefs are the loaded preferences; PrefsPath is where changes are
	// saved. An empty PrefsPath disables saving.
	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	generator Generator
	exporter  Exporter
	machine   *state.Machine
	logger    *log.Logger
	observer  ViewObserver
	prefs     prefs.Prefs
	prefsPath string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Components
	form    form
	spinner spinner.Model
	bar     progress.Model

	// Export state
	exporting bool
	savedPath string
	advisory  string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	machine := opts.Machine
	if machine == nil {
		machine = state.NewMachine(nil)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		ctx:       ctx,
		generator: opts.Generator,
		exporter:  opts.Exporter,
		machine:   machine,
		logger:    logger,
		observer:  opts.Observer,
		prefs:     opts.Prefs,
		prefsPath: opts.PrefsPath,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		form:      newForm(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.applyTheme(GetTheme(opts.Prefs.Theme))
	m.form.setWidth(m.formWidth())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.machine.Kind()
	next, cmd := m.update(msg)
	if after := next.machine.Kind(); after != before && next.observer != nil {
		next.observer.ObserveView(after.String())
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.form.setWidth(m.formWidth())
		m.help.Width = m.contentWidth()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case generatedMsg:
		return m.handleGenerated(msg), nil

	case loadingTickMsg:
		// Ticks from an earlier attempt stop here instead of rescheduling.
		if m.machine.Tick(msg.attempt) {
			return m, loadingTickCmd(msg.attempt)
		}
		return m, nil

	case spinner.TickMsg:
		if m.machine.Kind() != state.KindLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case exportedMsg:
		return m.handleExported(msg), nil
	}

	// Cursor blink and friends.
	if m.machine.FormVisible() {
		return m, m.form.update(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	width := m.contentWidth()
	sections := []string{m.renderHeader(width)}
	switch st := m.machine.State().(type) {
	case state.Idle:
		sections = append(sections, m.renderForm(width))
	case state.Failed:
		sections = append(sections, m.renderError(st.Message, width), m.renderForm(width))
	case state.Loading:
		sections = append(sections, m.renderLoading(width))
	case state.Result:
		sections = append(sections, m.renderResult(st, width))
	}
	sections = append(sections, m.renderFooter(width))

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Any key closes help.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.machine.FormVisible() && typing(msg) {
		return m, m.form.update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	}

	switch m.machine.Kind() {
	case state.KindIdle, state.KindError:
		return m.handleFormKey(msg)
	case state.KindResult:
		return m.handleResultKey(msg)
	}
	return m, nil
}

// handleFormKey processes keyboard input while the form is showing.
func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Enter):
		if m.form.onLast() {
			return m.submit()
		}
		return m, m.form.next()
	case key.Matches(msg, m.keys.Next):
		return m, m.form.next()
	case key.Matches(msg, m.keys.Prev):
		return m, m.form.prev()
	}
	return m, m.form.update(msg)
}

// handleResultKey processes keyboard input while a placard is showing.
func (m Model) handleResultKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Export):
		return m.startExport()
	case key.Matches(msg, m.keys.Reset):
		if m.exporting {
			return m, nil
		}
		if err := m.machine.Reset(); err != nil {
			m.logger.Debug("reset rejected", "error", err)
			return m, nil
		}
		m.savedPath, m.advisory = "", ""
		return m, m.form.focusField(fieldName)
	}
	return m, nil
}

// submit validates the form and starts a generation attempt.
func (m Model) submit() (Model, tea.Cmd) {
	if blank := m.form.firstBlank(); blank != fieldCount {
		m.form.showHints = true
		return m, m.form.focusField(blank)
	}

	in := m.form.input()
	attempt, err := m.machine.Submit(in)
	if err != nil {
		m.logger.Debug("submit rejected", "error", err)
		return m, nil
	}
	m.form.showHints = false
	m.savedPath, m.advisory = "", ""

	if m.generator == nil {
		m.machine.Fail(attempt, exhibit.UserMessage(errNoGenerator))
		return m, nil
	}
	return m, tea.Batch(
		generateCmd(m.ctx, m.generator, attempt, in),
		loadingTickCmd(attempt),
		m.spinner.Tick,
	)
}

// handleGenerated applies a finished attempt. Completions from superseded
// attempts are dropped by the machine.
func (m Model) handleGenerated(msg generatedMsg) Model {
	var applied bool
	if msg.err != nil {
		applied = m.machine.Fail(msg.attempt, exhibit.UserMessage(msg.err))
	} else {
		applied = m.machine.Succeed(msg.attempt, msg.data)
	}
	if !applied {
		m.logger.Debug("dropped stale completion", "attempt", msg.attempt)
	}
	return m
}

// startExport saves the current placard as a PNG in the background.
func (m Model) startExport() (Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	res, ok := m.machine.State().(state.Result)
	if !ok {
		return m, nil
	}
	m.savedPath, m.advisory = "", ""
	if m.exporter == nil {
		m.advisory = export.AdvisoryMessage(export.ErrNoDirectory)
		return m, nil
	}
	m.exporting = true
	return m, exportCmd(m.ctx, m.exporter, export.Card{Name: res.Input.Name, Data: res.Data})
}

// handleExported records the export result. The view stays on the placard
// either way.
func (m Model) handleExported(msg exportedMsg) Model {
	m.exporting = false
	if msg.err != nil {
		m.advisory = export.AdvisoryMessage(msg.err)
		return m
	}
	m.savedPath = msg.path
	if dir := filepath.Dir(msg.path); dir != m.prefs.LastExportDir {
		m.prefs.LastExportDir = dir
		m.savePrefs()
	}
	return m
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
	m.prefs.Theme = m.theme.Name
	m.savePrefs()
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	styles := t.Styles()
	m.bar = newStatBar(t)
	m.spinner.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// contentWidth is the width of the centred column everything renders into.
func (m Model) contentWidth() int {
	if m.width <= 0 {
		return maxContentWidth
	}
	return maxInt(minInt(m.width-4, maxContentWidth), minContentWidth)
}

// formWidth is the inner width of the form panel.
func (m Model) formWidth() int {
	return m.contentWidth() - 6
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
