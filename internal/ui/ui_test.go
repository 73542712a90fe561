package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestPrintTableAlignsWideCells(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	rows := []TableRow{
		{Tone: ToneGood, Cells: []string{"🟩 ok", "env/dev/app", "No changes."}},
		{Tone: ToneBad, Cells: []string{"❌ failed", "env/prod/app", "Plan failed"}},
	}
	if err := PrintTable(&buf, []string{"STATUS", "STACK", "DETAILS"}, rows, 0); err != nil {
		t.Fatalf("print: %v", err)
	}
	want := "STATUS     STACK         DETAILS\n" +
		"🟩 ok      env/dev/app   No changes.\n" +
		"❌ failed  env/prod/app  Plan failed\n"
	if buf.String() != want {
		t.Fatalf("unexpected table:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestPrintTableTruncates(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	rows := []TableRow{{Cells: []string{"x", strings.Repeat("a", 40)}}}
	if err := PrintTable(&buf, []string{"S", "DETAILS"}, rows, 10); err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(buf.String(), "aaaaaaaaa…") || strings.Contains(buf.String(), strings.Repeat("a", 11)) {
		t.Fatalf("expected truncated cell, got %q", buf.String())
	}
}

func TestPaintWithoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	if got := Paint(ToneBad, "failed"); got != "failed" {
		t.Fatalf("expected plain text, got %q", got)
	}
}

func TestRenderMarkdownPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, "## Summary (1 stack)\n", PreviewOptions{Width: 80}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "Summary (1 stack)") {
		t.Fatalf("unexpected render output %q", buf.String())
	}
}

func TestIsTerminalOnBuffer(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatalf("buffer is not a terminal")
	}
	if _, ok := TerminalWidth(&bytes.Buffer{}); ok {
		t.Fatalf("buffer has no width")
	}
}
