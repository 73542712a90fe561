// File: internal/ui/table.go
// Brief: Width-aware status tables for console output.

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Tone picks the color of a status cell.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneWarn
	ToneBad
)

var tonePrinters = map[Tone]*color.Color{
	ToneGood: color.New(color.FgGreen),
	ToneWarn: color.New(color.FgYellow),
	ToneBad:  color.New(color.FgRed, color.Bold),
}

// Paint colors text for tone. fatih/color honours color.NoColor and NO_COLOR.
func Paint(tone Tone, text string) string {
	if p, ok := tonePrinters[tone]; ok {
		return p.Sprint(text)
	}
	return text
}

// TableRow is one console table line; Tone colors the first cell.
type TableRow struct {
	Tone  Tone
	Cells []string
}

// PrintTable writes header and rows with columns padded to their display
// width, so emoji and East Asian text line up.
func PrintTable(w io.Writer, header []string, rows []TableRow, maxCell int) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	clipped := make([][]string, len(rows))
	for r, row := range rows {
		cells := make([]string, len(header))
		for i := range header {
			if i < len(row.Cells) {
				cells[i] = row.Cells[i]
			}
			if maxCell > 0 {
				cells[i] = runewidth.Truncate(cells[i], maxCell, "…")
			}
			if cw := runewidth.StringWidth(cells[i]); cw > widths[i] {
				widths[i] = cw
			}
		}
		clipped[r] = cells
	}

	if err := writeLine(w, header, widths, nil); err != nil {
		return err
	}
	for r, cells := range clipped {
		tone := rows[r].Tone
		if err := writeLine(w, cells, widths, func(s string) string { return Paint(tone, s) }); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, cells []string, widths []int, firstCell func(string) string) error {
	var b strings.Builder
	for i, c := range cells {
		padded := runewidth.FillRight(c, widths[i])
		if i == len(cells)-1 {
			padded = strings.TrimRight(padded, " ")
		}
		if i == 0 && firstCell != nil {
			padded = firstCell(padded)
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padded)
	}
	_, err := fmt.Fprintln(w, b.String())
	return err
}
