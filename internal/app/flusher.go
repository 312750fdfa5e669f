package app

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultFlushInterval = 15 * time.Second
	maxBackoff           = 30 * time.Second
)

// textfileWriter is implemented by metrics.Collector.
type textfileWriter interface {
	WriteTextfile(path string) error
}

// StartFlusher launches a background goroutine that writes metrics to path
// at a fixed cadence, backing off while writes fail. When ctx is cancelled it
// writes once more and closes the returned channel. An empty path starts
// nothing and returns a closed channel.
func StartFlusher(ctx context.Context, w textfileWriter, path string, interval time.Duration, logger *log.Logger) <-chan struct{} {
	done := make(chan struct{})
	if w == nil || strings.TrimSpace(path) == "" {
		close(done)
		return done
	}
	if interval <= 0 {
		interval = defaultFlushInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	go func() {
		defer close(done)
		failures := 0
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				if err := w.WriteTextfile(path); err != nil {
					logger.Warn("final metrics flush failed", "path", path, "error", err)
				}
				return
			case <-timer.C:
			}

			if err := w.WriteTextfile(path); err != nil {
				failures++
				logger.Warn("metrics flush failed", "path", path, "failures", failures, "error", err)
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
	return done
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
