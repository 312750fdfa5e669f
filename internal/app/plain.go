package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/five82/exhibit/internal/exhibit"
	"github.com/five82/exhibit/internal/export"
	"github.com/five82/exhibit/internal/state"
	"github.com/five82/exhibit/internal/ui"
)

var (
	// ErrAborted is returned when the visitor interrupts a prompt.
	ErrAborted = errors.New("prompt aborted")
	// ErrGenerationFailed is returned by plain mode when no placard was made.
	ErrGenerationFailed = errors.New("placard generation failed")
)

const (
	plainCardWidth = 64
	savedPrefix    = "保存しました: "
	exportQuestion = "解説看板を画像として保存しますか？"
)

// Prompter collects answers in plain mode. The survey implementation is
// swapped for a fake in tests.
type Prompter interface {
	Ask(ctx context.Context) (exhibit.UserInput, error)
	Confirm(ctx context.Context, message string) (bool, error)
}

type surveyPrompter struct {
	opts []survey.AskOpt
}

func newSurveyPrompter(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *surveyPrompter {
	return &surveyPrompter{opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)}}
}

func (p *surveyPrompter) Ask(ctx context.Context) (exhibit.UserInput, error) {
	if err := ctx.Err(); err != nil {
		return exhibit.UserInput{}, err
	}
	required := survey.WithValidator(survey.ComposeValidators(survey.Required, notBlank))
	var in exhibit.UserInput

	questions := []struct {
		prompt survey.Prompt
		dst    *string
	}{
		{&survey.Input{Message: exhibit.NameLabel, Help: exhibit.Placeholders.Name}, &in.Name},
		{&survey.Input{Message: exhibit.HobbyLabel, Help: exhibit.Placeholders.Hobby}, &in.Hobby},
		{&survey.Multiline{Message: exhibit.WorryLabel, Help: exhibit.Placeholders.Worry}, &in.Worry},
	}
	for _, q := range questions {
		opts := append([]survey.AskOpt{required}, p.opts...)
		if err := survey.AskOne(q.prompt, q.dst, opts...); err != nil {
			return exhibit.UserInput{}, translateSurveyErr(err)
		}
	}
	return in, nil
}

func (p *surveyPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{Message: message, Default: true}
	if err := survey.AskOne(prompt, &out, p.opts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func notBlank(ans interface{}) error {
	if s, ok := ans.(string); ok && strings.TrimSpace(s) == "" {
		return errors.New("この項目を入力してください。")
	}
	return nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// plainRunner asks the questions once, prints the placard and offers to save
// it. It drives the same state machine as the TUI.
type plainRunner struct {
	prompter  Prompter
	generator ui.Generator
	exporter  ui.Exporter
	machine   *state.Machine
	out       io.Writer
	theme     string
	interval  time.Duration
}

func (r plainRunner) run(ctx context.Context) error {
	in, err := r.prompter.Ask(ctx)
	if err != nil {
		if errors.Is(err, ErrAborted) {
			return nil
		}
		return fmt.Errorf("read answers: %w", err)
	}

	attempt, err := r.machine.Submit(in)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fmt.Fprintln(r.out, r.machine.LoadingMessage())

	stop := r.rotate(attempt)
	data, err := r.generator.Generate(ctx, in)
	stop()

	if err != nil {
		msg := exhibit.UserMessage(err)
		r.machine.Fail(attempt, msg)
		fmt.Fprintf(r.out, "\n%s\n%s\n", exhibit.ErrorHeading, msg)
		return fmt.Errorf("%w: %s", ErrGenerationFailed, exhibit.Outcome(err))
	}
	r.machine.Succeed(attempt, data)
	fmt.Fprintf(r.out, "\n%s\n\n", ui.RenderCard(in.Name, data, plainCardWidth, r.theme))

	if r.exporter == nil {
		return nil
	}
	save, err := r.prompter.Confirm(ctx, exportQuestion)
	if err != nil {
		if errors.Is(err, ErrAborted) {
			return nil
		}
		return fmt.Errorf("read answer: %w", err)
	}
	if !save {
		return nil
	}

	fmt.Fprintln(r.out, exhibit.ExportingLabel)
	path, err := r.exporter.Export(ctx, export.Card{Name: in.Name, Data: data})
	if err != nil {
		fmt.Fprintln(r.out, export.AdvisoryMessage(err))
		return nil
	}
	fmt.Fprintln(r.out, savedPrefix+path)
	return nil
}

// rotate prints the next loading message every interval until the returned
// stop function is called.
func (r plainRunner) rotate(attempt uint64) (stop func()) {
	interval := r.interval
	if interval <= 0 {
		interval = state.TickInterval
	}
	quit := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				if r.machine.Tick(attempt) {
					fmt.Fprintln(r.out, r.machine.LoadingMessage())
				}
			}
		}
	}()
	return func() {
		close(quit)
		wg.Wait()
	}
}
