// File: internal/ui/markdown.go
// Brief: Markdown preview rendering for terminals.

package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

const defaultWrap = 100

// PreviewOptions controls RenderMarkdown.
type PreviewOptions struct {
	Width int
	Color bool
}

// RenderMarkdown renders markdown for display on w. Without color the
// "notty" style is used so the output stays plain text.
func RenderMarkdown(w io.Writer, markdown string, opts PreviewOptions) error {
	width := opts.Width
	if width <= 0 {
		width = defaultWrap
	}
	style := glamour.WithStandardStyle("notty")
	if opts.Color {
		style = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width), glamour.WithEmoji())
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
