package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writePrefs(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_FirstRunUsesDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.toml")} {
		p, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) returned error: %v", path, err)
		}
		if p != Defaults() {
			t.Fatalf("Load(%q) = %+v, want %+v", path, p, Defaults())
		}
	}
}

func TestLoad_ReadsThemeAndExportDir(t *testing.T) {
	path := writePrefs(t, "theme = \"Night Safari\"\nlast_export_dir = \"/tmp/placards/\"\n")

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Night Safari" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Night Safari")
	}
	if p.LastExportDir != "/tmp/placards" {
		t.Fatalf("LastExportDir = %q, want %q", p.LastExportDir, "/tmp/placards")
	}
}

func TestLoad_BlankThemeIsDefault(t *testing.T) {
	p, err := Load(writePrefs(t, "theme = \"  \"\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != DefaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, DefaultTheme)
	}
}

func TestLoad_InvalidFileReportsButDegrades(t *testing.T) {
	p, err := Load(writePrefs(t, "not valid toml {{{\n"))
	if err == nil {
		t.Fatalf("Load returned nil error for invalid TOML")
	}
	if p != Defaults() {
		t.Fatalf("Load = %+v, want defaults", p)
	}
}

func TestSave_CreatesDirsAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	want := Prefs{Theme: "Rainforest", LastExportDir: "/tmp/placards"}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("prefs dir has %d entries, want only prefs.toml", len(entries))
	}
}

func TestSave_RequiresPath(t *testing.T) {
	if err := Save(" ", Defaults()); !errors.Is(err, ErrNoPath) {
		t.Fatalf("Save error = %v, want ErrNoPath", err)
	}
}
