package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"  short ", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"classification", 8, "classif…"},
		{"夜行性ラーメン科", 7, "夜行性…"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle_KeepsFileName(t *testing.T) {
	path := "/home/visitor/Pictures/exhibit/zoo_exhibit_1700000000000.png"
	got := truncateMiddle(path, 40)
	if w := runewidth.StringWidth(got); w != 40 {
		t.Fatalf("width = %d, want 40 (%q)", w, got)
	}
	if got[len(got)-len("1700000000000.png"):] != "1700000000000.png" {
		t.Fatalf("file name not preserved: %q", got)
	}
	if truncateMiddle("short.png", 40) != "short.png" {
		t.Fatalf("short path changed")
	}
}

func TestTruncateMiddle_CountsWideRunesAsTwoCells(t *testing.T) {
	path := "/home/来園者/写真/動物園の看板/展示/zoo_exhibit_1700000000000.png"
	for _, limit := range []int{12, 25, 31, 40} {
		got := truncateMiddle(path, limit)
		if w := runewidth.StringWidth(got); w > limit {
			t.Fatalf("truncateMiddle(%d) width = %d (%q)", limit, w, got)
		}
		if !strings.HasSuffix(got, ".png") || !strings.Contains(got, "…/") {
			t.Fatalf("truncateMiddle(%d) = %q, want an elided middle and the extension", limit, got)
		}
	}
}

func TestSpread(t *testing.T) {
	if got := lipgloss.Width(spread("a", "b", 10)); got != 10 {
		t.Fatalf("spread width = %d, want 10", got)
	}
	if got := spread("left", "right", 3); got != "left right" {
		t.Fatalf("overflowing spread = %q", got)
	}
}

func TestStatText(t *testing.T) {
	tests := map[float64]string{
		0:    "0%",
		85:   "85%",
		42.5: "42.5%",
		140:  "140%",
		-5:   "-5%",
	}
	for in, want := range tests {
		if got := statText(in); got != want {
			t.Fatalf("statText(%v) = %q, want %q", in, got, want)
		}
	}
}
