package main

import (
	"fmt"
	"io"

	"github.com/example/stackci/internal/cliutil"
	"github.com/example/stackci/internal/report"
	"github.com/example/stackci/internal/ui"
)

const maxDetailsWidth = 60

var statusTones = map[report.Status]ui.Tone{
	report.StatusUnchanged: ui.ToneGood,
	report.StatusChanged:   ui.ToneWarn,
	report.StatusFailed:    ui.ToneBad,
}

// printConsole shows the outcome on stderr for people watching a terminal.
func printConsole(w io.Writer, res report.Result, opts *report.Options, common *cliutil.Common) error {
	terminal := ui.IsTerminal(w)
	if !terminal && !opts.Console && !opts.Preview {
		return nil
	}
	if opts.Preview {
		width, _ := ui.TerminalWidth(w)
		if err := ui.RenderMarkdown(w, res.Markdown, ui.PreviewOptions{Width: width, Color: terminal && !common.NoColor}); err != nil {
			return err
		}
	}
	if terminal || opts.Console {
		if len(res.Summary.Rows) > 0 {
			rows := make([]ui.TableRow, 0, len(res.Summary.Rows))
			for _, r := range res.Summary.Rows {
				rows = append(rows, ui.TableRow{
					Tone:  statusTones[r.Status],
					Cells: []string{r.Status.Emoji() + " " + r.Status.String(), r.Stack, r.Template, r.Details},
				})
			}
			if err := ui.PrintTable(w, []string{"STATUS", "STACK", "TEMPLATE", "DETAILS"}, rows, maxDetailsWidth); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, verdict(res.Summary)); err != nil {
			return err
		}
	}
	return nil
}

func verdict(s report.Summary) string {
	status := ui.Paint(ui.ToneGood, "success")
	if !s.Success {
		status = ui.Paint(ui.ToneBad, "failed")
	}
	changes := "no changes"
	if s.HasChanges {
		changes = ui.Paint(ui.ToneWarn, "changes detected")
	}
	return fmt.Sprintf("summary: %d of %d stack(s) reported, %s, %s", len(s.Rows), s.StackCount, status, changes)
}
