package export

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// FilenamePrefix starts every exported file name.
const FilenamePrefix = "zoo_exhibit_"

// AdvisoryText is shown whenever an export fails.
const AdvisoryText = "画像の保存に失敗しました。ターミナルのスクリーンショットで保存できる場合があります。"

// ErrNoDirectory is returned when the exporter has nowhere to write.
var ErrNoDirectory = errors.New("export directory is not configured")

// Filename returns the export file name for now.
func Filename(now time.Time) string {
	return fmt.Sprintf("%s%d.png", FilenamePrefix, now.UnixMilli())
}

// AdvisoryMessage returns the user-facing text for a failed export. The
// underlying error is only logged.
func AdvisoryMessage(err error) string {
	if err == nil {
		return ""
	}
	return AdvisoryText
}

// Recorder receives one observation per Export call.
type Recorder interface {
	ObserveExport(outcome string, elapsed time.Duration)
}

// Config wires an Exporter.
type Config struct {
	Dir        string
	Options    Options
	Rasterizer Rasterizer
	Logger     *log.Logger
	Recorder   Recorder
	Now        func() time.Time
}

// Exporter rasterises cards and writes them as PNG files.
type Exporter struct {
	dir      string
	opts     Options
	raster   Rasterizer
	logger   *log.Logger
	recorder Recorder
	now      func() time.Time
}

// NewExporter builds an Exporter from cfg.
func NewExporter(cfg Config) *Exporter {
	e := &Exporter{
		dir:      strings.TrimSpace(cfg.Dir),
		opts:     cfg.Options,
		raster:   cfg.Rasterizer,
		logger:   cfg.Logger,
		recorder: cfg.Recorder,
		now:      cfg.Now,
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.raster == nil {
		e.raster = PlacardRasterizer{Logger: e.logger}
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Dir reports where files are written.
func (e *Exporter) Dir() string {
	if e == nil {
		return ""
	}
	return e.dir
}

// Export draws card and saves it into the export directory, returning the
// written path. Panics from the rasteriser are recovered and returned as
// errors; the caller's state is never touched.
func (e *Exporter) Export(ctx context.Context, card Card) (path string, err error) {
	if e == nil {
		return "", fmt.Errorf("exporter is nil")
	}
	start := e.now()
	defer func() {
		if r := recover(); r != nil {
			path = ""
			err = fmt.Errorf("rasterize panicked: %v", r)
		}
		outcome := "ok"
		if err != nil {
			outcome = "error"
			e.logger.Warn("export failed", "err", err)
		} else {
			e.logger.Info("exported placard", "path", path)
		}
		if e.recorder != nil {
			e.recorder.ObserveExport(outcome, e.now().Sub(start))
		}
	}()

	if e.dir == "" {
		return "", ErrNoDirectory
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	img, err := e.raster.Rasterize(card, e.opts)
	if err != nil {
		return "", fmt.Errorf("rasterize: %w", err)
	}
	if img == nil {
		return "", fmt.Errorf("rasterize: no image")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	target := filepath.Join(e.dir, Filename(start))

	tmp, err := os.CreateTemp(e.dir, "."+FilenamePrefix+"*.png")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err := png.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("chmod export: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("rename export: %w", err)
	}
	return target, nil
}
