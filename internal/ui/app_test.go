package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/exhibit/internal/exhibit"
	"github.com/five82/exhibit/internal/export"
	"github.com/five82/exhibit/internal/prefs"
	"github.com/five82/exhibit/internal/state"
)

type fakeGenerator struct {
	data exhibit.Data
	err  error
}

func (f fakeGenerator) Generate(context.Context, exhibit.UserInput) (exhibit.Data, error) {
	return f.data, f.err
}

type fakeExporter struct {
	path  string
	err   error
	cards []export.Card
}

func (f *fakeExporter) Export(_ context.Context, card export.Card) (string, error) {
	f.cards = append(f.cards, card)
	return f.path, f.err
}

type recordingObserver struct {
	views []string
}

func (r *recordingObserver) ObserveView(view string) {
	r.views = append(r.views, view)
}

func sampleData() exhibit.Data {
	return exhibit.Data{
		ScientificName: "Homo ramenus nocturnus",
		DangerLevel:    "★★☆☆☆",
		Classification: "夜行性ラーメン科",
		Description:    "深夜になると活発に動き出し、湯気の立つ丼を求めて徘徊する。",
		FunFact:        "替え玉の回数で機嫌がわかる。",
		Stats:          exhibit.Stats{Stamina: 35, Intelligence: 70, Laziness: 90, Charm: 85},
	}
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := New(opts)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	ctrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

// fill types the three fields in tab order.
func fill(t *testing.T, m Model, name, hobby, worry string) Model {
	t.Helper()
	return update(t, m, runes(name), tabKey, runes(hobby), tabKey, runes(worry))
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSubmit_BlankFieldsShowHints(t *testing.T) {
	m := newTestModel(t, Options{Generator: fakeGenerator{}})
	m = update(t, m, runes("タナカ"), ctrlS)

	if got := m.machine.Kind(); got != state.KindIdle {
		t.Fatalf("kind = %v, want idle", got)
	}
	if !m.form.showHints {
		t.Fatalf("showHints = false, want true")
	}
	if m.form.focus != fieldHobby {
		t.Fatalf("focus = %v, want first blank field %v", m.form.focus, fieldHobby)
	}
	if !strings.Contains(m.View(), blankHint) {
		t.Fatalf("view does not show blank hint")
	}
}

func TestSubmit_StartsLoadingThenShowsPlacard(t *testing.T) {
	obs := &recordingObserver{}
	m := newTestModel(t, Options{Generator: fakeGenerator{}, Observer: obs})
	m = fill(t, m, "タナカ", "深夜のラーメン", "階段で息が切れる")

	next, cmd := m.Update(ctrlS)
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("submit returned nil command")
	}
	if got := m.machine.Kind(); got != state.KindLoading {
		t.Fatalf("kind = %v, want loading", got)
	}
	if view := m.View(); !strings.Contains(view, exhibit.LoadingMessages[0]) {
		t.Fatalf("loading view missing first message: %q", view)
	}

	m = update(t, m, generatedMsg{attempt: m.machine.Attempt(), data: sampleData()})
	if got := m.machine.Kind(); got != state.KindResult {
		t.Fatalf("kind = %v, want result", got)
	}
	view := m.View()
	for _, want := range []string{"タナカ", "Homo ramenus nocturnus", exhibit.DangerCaption, exhibit.KeeperCaption, exhibit.FunFactCaption, "90%"} {
		if !strings.Contains(view, want) {
			t.Fatalf("result view missing %q", want)
		}
	}
	if got := strings.Join(obs.views, ","); got != "loading,result" {
		t.Fatalf("observed views = %q, want loading,result", got)
	}
}

func TestEnter_MovesThenSubmitsOnLastField(t *testing.T) {
	m := newTestModel(t, Options{Generator: fakeGenerator{}})
	m = update(t, m, runes("タナカ"), enterKey)
	if m.form.focus != fieldHobby {
		t.Fatalf("focus after enter = %v, want hobby", m.form.focus)
	}
	m = update(t, m, runes("昼寝"), enterKey, runes("通知が怖い"))
	if m.form.focus != fieldWorry {
		t.Fatalf("focus = %v, want worry", m.form.focus)
	}
	m = update(t, m, enterKey)
	if got := m.machine.Kind(); got != state.KindLoading {
		t.Fatalf("kind = %v, want loading", got)
	}
	if in := m.form.input(); in.Worry != "通知が怖い" {
		t.Fatalf("worry = %q, enter must not insert a newline", in.Worry)
	}
}

func TestGenerationError_ShowsMessageAboveForm(t *testing.T) {
	m := newTestModel(t, Options{Generator: fakeGenerator{}})
	m = fill(t, m, "タナカ", "深夜のラーメン", "階段で息が切れる")
	m = update(t, m, ctrlS)
	m = update(t, m, generatedMsg{attempt: m.machine.Attempt(), err: exhibit.ErrMissingCredential})

	if got := m.machine.Kind(); got != state.KindError {
		t.Fatalf("kind = %v, want error", got)
	}
	view := m.View()
	if !strings.Contains(view, exhibit.ErrorHeading) || !strings.Contains(view, exhibit.MissingCredentialMessage) {
		t.Fatalf("error view missing heading or message")
	}
	if !strings.Contains(view, exhibit.NameLabel) {
		t.Fatalf("form not shown under the error")
	}
	if in := m.form.input(); in.Name != "タナカ" {
		t.Fatalf("inputs lost after error: %+v", in)
	}
}

func TestStaleCompletionIsIgnored(t *testing.T) {
	m := newTestModel(t, Options{Generator: fakeGenerator{}})
	m = fill(t, m, "タナカ", "深夜のラーメン", "階段で息が切れる")
	m = update(t, m, ctrlS)
	first := m.machine.Attempt()
	m = update(t, m, generatedMsg{attempt: first, err: errors.New("boom")})
	m = update(t, m, ctrlS)

	m = update(t, m, generatedMsg{attempt: first, data: sampleData()})
	if got := m.machine.Kind(); got != state.KindLoading {
		t.Fatalf("kind = %v, stale success must not apply", got)
	}
}

func TestLoadingTick_RotatesOnlyForCurrentAttempt(t *testing.T) {
	m := newTestModel(t, Options{Generator: fakeGenerator{}})
	m = fill(t, m, "タナカ", "深夜のラーメン", "階段で息が切れる")
	m = update(t, m, ctrlS)
	attempt := m.machine.Attempt()

	next, cmd := m.Update(loadingTickMsg{attempt: attempt})
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("current tick did not reschedule")
	}
	if got := m.machine.LoadingMessage(); got != exhibit.LoadingMessages[1] {
		t.Fatalf("message = %q, want %q", got, exhibit.LoadingMessages[1])
	}

	_, cmd = m.Update(loadingTickMsg{attempt: attempt + 7})
	if cmd != nil {
		t.Fatalf("stale tick rescheduled")
	}
}

func TestSpinnerTick_IgnoredOutsideLoading(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := m.Update(spinner.TickMsg{})
	if cmd != nil {
		t.Fatalf("spinner tick outside loading returned a command")
	}
}

func resultModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Generator == nil {
		opts.Generator = fakeGenerator{}
	}
	m := newTestModel(t, opts)
	m = fill(t, m, "タナカ", "深夜のラーメン", "階段で息が切れる")
	m = update(t, m, ctrlS)
	return update(t, m, generatedMsg{attempt: m.machine.Attempt(), data: sampleData()})
}

func TestExport_SuccessRemembersDirectory(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	exp := &fakeExporter{path: "/tmp/placards/zoo_exhibit_1.png"}
	m := resultModel(t, Options{Exporter: exp, PrefsPath: prefsPath})

	next, cmd := m.Update(runes("s"))
	m = next.(Model)
	if !m.exporting || cmd == nil {
		t.Fatalf("export did not start")
	}
	if !strings.Contains(m.View(), exhibit.ExportingLabel) {
		t.Fatalf("view does not show exporting label")
	}

	m = update(t, m, cmd())
	if m.exporting {
		t.Fatalf("still exporting after result")
	}
	if m.savedPath != exp.path {
		t.Fatalf("savedPath = %q, want %q", m.savedPath, exp.path)
	}
	if len(exp.cards) != 1 || exp.cards[0].Name != "タナカ" {
		t.Fatalf("exported cards = %+v", exp.cards)
	}

	saved, err := prefs.Load(prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.LastExportDir != "/tmp/placards" {
		t.Fatalf("LastExportDir = %q, want /tmp/placards", saved.LastExportDir)
	}
}

func TestExport_FailureShowsAdvisoryAndKeepsPlacard(t *testing.T) {
	exp := &fakeExporter{err: errors.New("disk full")}
	m := resultModel(t, Options{Exporter: exp})

	next, cmd := m.Update(runes("s"))
	m = next.(Model)
	m = update(t, m, cmd())

	if got := m.machine.Kind(); got != state.KindResult {
		t.Fatalf("kind = %v, want result", got)
	}
	if m.advisory != export.AdvisoryText {
		t.Fatalf("advisory = %q, want %q", m.advisory, export.AdvisoryText)
	}
}

func TestExport_WithoutExporterShowsAdvisory(t *testing.T) {
	m := resultModel(t, Options{})
	m = update(t, m, runes("s"))
	if m.exporting || m.advisory == "" {
		t.Fatalf("exporting=%v advisory=%q", m.exporting, m.advisory)
	}
}

func TestReset_ReturnsToFormKeepingInputs(t *testing.T) {
	m := resultModel(t, Options{})
	m = update(t, m, runes("r"))

	if got := m.machine.Kind(); got != state.KindIdle {
		t.Fatalf("kind = %v, want idle", got)
	}
	if m.form.focus != fieldName {
		t.Fatalf("focus = %v, want name", m.form.focus)
	}
	if in := m.form.input(); in.Name != "タナカ" {
		t.Fatalf("inputs lost after reset: %+v", in)
	}
}

func TestTyping_NeverTriggersShortcuts(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, runes("T?sr"))

	if m.showHelp {
		t.Fatalf("help opened while typing")
	}
	if m.theme.Name != "Savanna" {
		t.Fatalf("theme changed while typing: %q", m.theme.Name)
	}
	if got := m.form.input().Name; got != "T?sr" {
		t.Fatalf("name = %q, want T?sr", got)
	}
}

func TestCycleTheme_PersistsPreference(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := resultModel(t, Options{PrefsPath: prefsPath})
	m = update(t, m, runes("T"))

	if m.theme.Name != "Night Safari" {
		t.Fatalf("theme = %q, want Night Safari", m.theme.Name)
	}
	saved, err := prefs.Load(prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != "Night Safari" {
		t.Fatalf("saved theme = %q, want Night Safari", saved.Theme)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.theme.Name != "Rainforest" {
		t.Fatalf("theme = %q, want Rainforest", m.theme.Name)
	}
}

func TestHelp_OpensAndAnyKeyCloses(t *testing.T) {
	m := newTestModel(t, Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if !m.showHelp {
		t.Fatalf("f1 did not open help")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not rendered")
	}
	m = update(t, m, runes("x"))
	if m.showHelp {
		t.Fatalf("help still open")
	}
	if got := m.form.input().Name; got != "" {
		t.Fatalf("closing key leaked into the form: %q", got)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, Options{})
	if _, cmd := m.Update(escKey); !isQuit(cmd) {
		t.Fatalf("esc on the form did not quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Fatalf("ctrl+c did not quit")
	}

	r := resultModel(t, Options{})
	if _, cmd := r.Update(escKey); isQuit(cmd) {
		t.Fatalf("esc on the placard quit")
	}
}

func TestNew_UnknownThemeFallsBack(t *testing.T) {
	m := New(Options{Prefs: prefs.Prefs{Theme: "Aquarium"}})
	if m.theme.Name != "Savanna" {
		t.Fatalf("theme = %q, want Savanna", m.theme.Name)
	}
	if m.View() != "Loading..." {
		t.Fatalf("view before first resize = %q", m.View())
	}
}
