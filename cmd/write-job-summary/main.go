// main.go implements write-job-summary: it records one stack's plan outcome
// as a JSON artifact for build-summary to aggregate.
package main

import (
	"fmt"
	"strings"

	"github.com/example/stackci/internal/cliutil"
	"github.com/example/stackci/internal/ghoutput"
	"github.com/example/stackci/internal/summary"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

func main() {
	cliutil.Main(newRootCommand())
}

func newRootCommand() *cobra.Command {
	opts := summary.NewOptions()
	common := &cliutil.Common{}
	cmd := cliutil.NewRoot("write-job-summary", "Write a per-stack summary JSON artifact", common,
		func(cmd *cobra.Command, log logr.Logger) error {
			return runWrite(cmd, log, opts)
		})
	cmd.Long = strings.TrimSpace(`
Writes {"stack","hasChanges","jobStatus","summary","templateVersion","planUrl"}
to <output-dir>/summary-<stack>.json (or --output-file) and prints the path.
`)
	cmd.Example = strings.TrimSpace(`
  write-job-summary --stack env/prod/service --job-status success --has-changes true \
    --summary "Plan: 1 to add, 0 to change, 0 to destroy." --github-output "$GITHUB_OUTPUT"
`)
	opts.BindFlags(cmd.Flags())
	return cliutil.Finalize(cmd, summary.RequiredFlags...)
}

func runWrite(cmd *cobra.Command, log logr.Logger, opts *summary.Options) error {
	record := opts.Record()
	name := summary.ArtifactName(record.Stack)
	path := opts.ResolveOutputPath()
	if err := summary.Write(path, record); err != nil {
		return err
	}
	log.V(1).Info("wrote stack summary", "stack", record.Stack, "path", path, "hasChanges", record.HasChanges, "jobStatus", record.JobStatus)
	if err := ghoutput.Append(opts.GitHubOutput, ghoutput.P("artifact-name", name), ghoutput.P("file", path)); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
