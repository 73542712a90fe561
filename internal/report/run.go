package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/stackci/internal/ghoutput"
	"github.com/example/stackci/internal/summary"
	"github.com/go-logr/logr"
)

// Result is what a build-summary run produced.
type Result struct {
	Summary  Summary
	Markdown string
	Path     string
}

// Run loads the summaries, writes the composed report to the cleaned
// opts.OutputFile and appends file/success/has-changes to the output-collection file.
func Run(log logr.Logger, opts *Options) (Result, error) {
	records, found := Load(log, opts.SummariesDir)
	s := Aggregate(opts.StackCount(log), records, found > 0)
	content := Compose(s, opts.Footer())
	log.V(1).Info("aggregated summaries", "dir", opts.SummariesDir, "files", found, "rows", len(s.Rows))

	path := filepath.Clean(opts.OutputFile)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return Result{}, fmt.Errorf("write report: %w", err)
	}
	err := ghoutput.Append(opts.GitHubOutput,
		ghoutput.P("file", path),
		ghoutput.P("success", summary.FormatBool(s.Success)),
		ghoutput.P("has-changes", summary.FormatBool(s.HasChanges)),
	)
	if err != nil {
		return Result{}, err
	}
	return Result{Summary: s, Markdown: content, Path: path}, nil
}
