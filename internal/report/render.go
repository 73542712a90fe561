// render.go turns summary records into the markdown status report posted on
// pull requests and workflow runs.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/stackci/internal/summary"
)

// TimestampLayout renders the footer time, e.g. "Tue 07. Oct 14:03:09".
const TimestampLayout = "Mon 02. Jan 15:04:05"

// Markers let the pull-request automation find and update its own comment.
const (
	RunIDMarkerPrefix = "<!--terraform-pr-github-run-id:"
	SummaryMarker     = "<!--terraform-pr-summary-->"
	RecreateMarker    = "<!--terraform-pr-recreate-->"
)

const (
	tableHeader    = "| Status | Stack | Template | Details |"
	tableAlignment = "|:---:|------------|----------------|------------|"
	failedDetails  = "Plan failed"
)

// Status classifies a stack row.
type Status int

const (
	StatusUnchanged Status = iota
	StatusChanged
	StatusFailed
)

// Emoji is the table marker for s.
func (s Status) Emoji() string {
	switch s {
	case StatusUnchanged:
		return "🟩"
	case StatusChanged:
		return "🟧"
	default:
		return "❌"
	}
}

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "no changes"
	case StatusChanged:
		return "changes"
	default:
		return "failed"
	}
}

// Row is one rendered table line.
type Row struct {
	Status   Status
	Stack    string
	PlanURL  string
	Template string
	Details  string
}

// Summary is the aggregated view of all stack records.
type Summary struct {
	StackCount int
	Table      bool
	Rows       []Row
	Success    bool
	HasChanges bool
}

// Aggregate sorts records and classifies each one. stackCount only feeds the
// header; table says whether any summary file was present at all.
func Aggregate(stackCount int, records []summary.Record, table bool) Summary {
	s := Summary{StackCount: stackCount, Table: table, Success: true}
	if !table {
		return s
	}
	sorted := append([]summary.Record(nil), records...)
	SortRecords(sorted)
	for _, rec := range sorted {
		row := Row{
			Stack:    rec.Stack,
			PlanURL:  rec.PlanURL,
			Template: rec.TemplateVersion,
			Details:  rec.Summary,
		}
		switch {
		case !rec.Succeeded():
			row.Status = StatusFailed
			row.Details = failedDetails
			s.Success = false
		case rec.HasChanges:
			row.Status = StatusChanged
			s.HasChanges = true
		default:
			row.Status = StatusUnchanged
		}
		if row.Template == "" {
			row.Template = summary.DefaultTemplateVersion
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// StackCell renders the stack column, linking to the plan when known.
func (r Row) StackCell() string {
	if r.PlanURL != "" {
		return fmt.Sprintf("[`%s`](%s)", r.Stack, r.PlanURL)
	}
	return "`" + r.Stack + "`"
}

// Header is the report title line.
func (s Summary) Header() string {
	noun := "stacks"
	if s.StackCount == 1 {
		noun = "stack"
	}
	return fmt.Sprintf("## Summary (%d %s)", s.StackCount, noun)
}

// Markdown renders the header and, when there are summary files, the table.
func (s Summary) Markdown() string {
	lines := []string{s.Header()}
	if s.Table {
		lines = append(lines, tableHeader, tableAlignment)
		for _, r := range s.Rows {
			lines = append(lines, fmt.Sprintf("|%s|%s|%s|%s|", r.Status.Emoji(), r.StackCell(), r.Template, r.Details))
		}
	}
	return strings.Join(lines, "\n")
}

// Footer carries the run metadata appended under the table.
type Footer struct {
	RunID       string
	CommitSHA   string
	PullRequest bool
	Time        time.Time
}

// ShortSHA returns the first 8 characters of the commit.
func (f Footer) ShortSHA() string {
	r := []rune(f.CommitSHA)
	if len(r) > 8 {
		r = r[:8]
	}
	return string(r)
}

// Compose renders the full report. The pull-request variant embeds the
// comment markers and the recreate checkbox.
func Compose(s Summary, f Footer) string {
	stamp := fmt.Sprintf("_Time: %s, commit: %s_", f.Time.Format(TimestampLayout), f.ShortSHA())
	var lines []string
	if f.PullRequest {
		lines = []string{
			s.Markdown(),
			RunIDMarkerPrefix + f.RunID + "-->",
			SummaryMarker,
			"",
			"---",
			"",
			"- [ ] Check this box to recreate plans " + RecreateMarker,
			"",
			stamp,
			"",
		}
	} else {
		lines = []string{
			s.Markdown(),
			"",
			stamp,
			"",
		}
	}
	return strings.Join(lines, "\n")
}
