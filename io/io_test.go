package argvio

import (
	"bytes"
	"testing"
)

func TestColorOverrides(t *testing.T) {
	m := New().WithOut(&bytes.Buffer{})

	t.Setenv("NO_COLOR", "1")
	if m.SupportsColor() {
		t.Fatal("NO_COLOR should disable")
	}
	if !m.ForceColor().SupportsColor() {
		t.Fatal("ForceColor should win over NO_COLOR")
	}
	if m.NoColor().SupportsColor() {
		t.Fatal("NoColor should disable")
	}

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	if !m.ColorAuto().SupportsColor() {
		t.Fatal("FORCE_COLOR should enable")
	}
}

func TestNonFileWriterIsNotTTY(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	m := New().WithOut(&bytes.Buffer{})
	if m.IsTTY() {
		t.Fatal("buffer must not be a terminal")
	}
	if m.SupportsColor() {
		t.Fatal("expected no color for a buffer")
	}
	if got := m.Bold("x"); got != "x" {
		t.Fatalf("expected plain text, got %q", got)
	}
}

func TestColorize(t *testing.T) {
	m := New().WithOut(&bytes.Buffer{}).ForceColor()
	if got := m.Colorize("x", "31"); got != "\x1b[31mx\x1b[0m" {
		t.Fatalf("unexpected ANSI %q", got)
	}
	if got := m.Colorize("x", ""); got != "x" {
		t.Fatalf("empty code should leave text alone, got %q", got)
	}
}
