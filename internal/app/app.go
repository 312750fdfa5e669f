package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/five82/exhibit/internal/config"
	"github.com/five82/exhibit/internal/exhibit"
	"github.com/five82/exhibit/internal/export"
	"github.com/five82/exhibit/internal/gemini"
	"github.com/five82/exhibit/internal/logging"
	"github.com/five82/exhibit/internal/metrics"
	"github.com/five82/exhibit/internal/prefs"
	"github.com/five82/exhibit/internal/state"
	"github.com/five82/exhibit/internal/ui"
)

// Options configure the exhibit application.
type Options struct {
	ConfigPath string
	Plain      bool // line-oriented prompts instead of the TUI
	ShowLogs   int  // print this many trailing log lines and exit
}

// Run boots exhibit until the user exits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if opts.ShowLogs > 0 {
		return printLogs(os.Stdout, cfg.LogFile, opts.ShowLogs)
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = closer.Close() }()

	collector := metrics.New()
	flushCtx, stopFlusher := context.WithCancel(context.Background())
	flushed := StartFlusher(flushCtx, collector, cfg.MetricsFile, 0, logger)
	defer func() {
		stopFlusher()
		<-flushed
	}()

	client, err := gemini.NewClient(gemini.Options{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("init gemini client: %w", err)
	}

	generator := exhibit.NewGenerator(exhibit.GeneratorConfig{
		Client:     client,
		Credential: cfg.APIKey,
		Logger:     logger,
		Recorder:   collector,
	})
	exporter := export.NewExporter(export.Config{
		Dir:      cfg.ExportDir,
		Options:  export.Options{FontPath: cfg.FontPath},
		Logger:   logger,
		Recorder: collector,
	})

	userPrefs, err := prefs.Load(cfg.PrefsFile)
	if err != nil {
		logger.Warn("ignoring prefs file", "err", err)
	}
	machine := state.NewMachine(nil)

	logger.Info("exhibit starting",
		"config", cfg.Path,
		"model", client.Model(),
		"export_dir", exporter.Dir(),
		"last_export_dir", userPrefs.LastExportDir,
		"credential", exhibit.UsableCredential(cfg.APIKey),
		"plain", opts.Plain,
	)
	defer logger.Info("exhibit stopped")

	if opts.Plain {
		runner := plainRunner{
			prompter:  newSurveyPrompter(os.Stdin, os.Stdout, os.Stderr),
			generator: generator,
			exporter:  exporter,
			machine:   machine,
			out:       os.Stdout,
			theme:     userPrefs.Theme,
		}
		return runner.run(ctx)
	}

	err = ui.Run(ui.Options{
		Context:   ctx,
		Generator: generator,
		Exporter:  exporter,
		Machine:   machine,
		Logger:    logger,
		Observer:  collector,
		Prefs:     userPrefs,
		PrefsPath: cfg.PrefsFile,
	})
	if err != nil && ctx.Err() != nil {
		// Interrupted by a signal; not a failure.
		return nil
	}
	return err
}

// printLogs writes the last n lines of the log file to w. The TUI owns the
// screen while running, so this is how errors are inspected afterwards.
func printLogs(w io.Writer, path string, n int) error {
	lines, err := logging.Tail(path, n)
	if err != nil {
		return fmt.Errorf("tail log: %w", err)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
