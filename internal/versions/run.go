package versions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/example/stackci/internal/ghoutput"
	"github.com/go-logr/logr"
)

// Run extracts the versions for opts.StackDir, writes the joined result to the
// optional result file and output-collection file, and prints it to out.
func Run(log logr.Logger, opts *Options, out io.Writer) (string, error) {
	entries := Extract(log, opts.StackDir)
	result := Join(entries)
	log.V(1).Info("extracted template versions", "stackDir", opts.StackDir, "entries", len(entries))

	if opts.OutputFile != "" {
		if dir := filepath.Dir(opts.OutputFile); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("create result dir: %w", err)
			}
		}
		if err := os.WriteFile(opts.OutputFile, []byte(result+"\n"), 0o644); err != nil {
			return "", fmt.Errorf("write result file: %w", err)
		}
	}
	if err := ghoutput.Append(opts.GitHubOutput, ghoutput.P(opts.OutputKey, result)); err != nil {
		return "", err
	}
	if err := opts.Print(out, entries); err != nil {
		return "", fmt.Errorf("print result: %w", err)
	}
	return result, nil
}
