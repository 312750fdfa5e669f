// Package app is the composition root for exhibit.
//
// # Overview
//
// Run loads configuration, opens the log file, builds the Gemini client,
// the placard generator, the PNG exporter and the metrics collector, then
// hands them to either the Bubble Tea UI or the plain prompt runner. Both
// front ends drive the same state.Machine.
//
// # Components
//
//   - app.go: Run and dependency wiring
//   - plain.go: the -plain mode, using survey prompts and printing the card
//   - flusher.go: background writer for the Prometheus textfile
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Defaults, file, EXHIBIT_*, API_KEY
//	       ├─────> logging.Open()       logfmt log file
//	       ├─────> metrics.New()        Private Prometheus registry
//	       ├─────> StartFlusher()       Periodic textfile writes
//	       ├─────> gemini.NewClient()   Lazy SDK client
//	       ├─────> exhibit.NewGenerator()
//	       ├─────> export.NewExporter()
//	       └─────> ui.Run() or plainRunner.run()   Blocks until exit
//
// # Metrics Flushing
//
// When metrics_file is set the flusher rewrites it every 15 seconds, doubling
// the wait after each failed write up to 30 seconds. On shutdown it writes
// once more before Run returns, so the file always holds the final counts.
//
// # Error Handling
//
// Startup failures (bad config, unwritable log file) are returned wrapped
// and reported by main. Generation and export failures never leave Run as
// errors in the TUI; they are shown to the visitor. Plain mode returns
// ErrGenerationFailed so the exit status reflects a missing placard.
package app
