package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "request", "abc")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "request=abc") {
		t.Fatalf("output = %q, want logfmt warn line", out)
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatalf("New returned nil error for unknown level")
	}
}

func TestOpen_CreatesDirectoriesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "exhibit.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := Open(path, "info")
		if err != nil {
			t.Fatalf("Open returned error: %v", err)
		}
		logger.Info(msg)
		if err := closer.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Fatalf("log file = %q, want both lines", data)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, _, err := Open("  ", "info"); err == nil {
		t.Fatalf("Open returned nil error for empty path")
	}
}

func TestTail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exhibit.log")
	var content strings.Builder
	for i := 1; i <= 7; i++ {
		content.WriteString("line ")
		content.WriteString(string(rune('0' + i)))
		content.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"last three", 3, []string{"line 5", "line 6", "line 7"}},
		{"more than available", 10, []string{"line 1", "line 2", "line 3", "line 4", "line 5", "line 6", "line 7"}},
		{"exact", 7, []string{"line 1", "line 2", "line 3", "line 4", "line 5", "line 6", "line 7"}},
		{"zero", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(path, tt.n)
			if err != nil {
				t.Fatalf("Tail: %v", err)
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("Tail(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	lines, err := Tail(filepath.Join(t.TempDir(), "absent.log"), 5)
	if err != nil || lines != nil {
		t.Fatalf("Tail on missing file = %v, %v; want nil, nil", lines, err)
	}
}
