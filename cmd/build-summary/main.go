// main.go implements build-summary: it combines the per-stack summary
// artifacts of a run into one markdown report.
package main

import (
	"fmt"
	"strings"

	"github.com/example/stackci/internal/cliutil"
	"github.com/example/stackci/internal/report"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

func main() {
	cliutil.Main(newRootCommand())
}

func newRootCommand() *cobra.Command {
	opts := report.NewOptions()
	common := &cliutil.Common{}
	cmd := cliutil.NewRoot("build-summary", "Build a combined summary markdown file", common,
		func(cmd *cobra.Command, log logr.Logger) error {
			return runBuild(cmd, log, opts, common)
		})
	cmd.Long = strings.TrimSpace(`
Reads every summary JSON in --summaries-dir, renders a status table sorted by
stack (dev before prod) and writes the report to --output-file. With
--is-pull-request the report carries the markers used to update the pull
request comment and a checkbox to recreate plans.
`)
	cmd.Example = strings.TrimSpace(`
  build-summary --summaries-dir summaries --stacks-json '["env/dev/app","env/prod/app"]' \
    --github-run-id "$GITHUB_RUN_ID" --commit-sha "$GITHUB_SHA" --is-pull-request true \
    --output-file summary.md --github-output "$GITHUB_OUTPUT"
`)
	opts.BindFlags(cmd.Flags())
	return cliutil.Finalize(cmd, report.RequiredFlags...)
}

func runBuild(cmd *cobra.Command, log logr.Logger, opts *report.Options, common *cliutil.Common) error {
	res, err := report.Run(log, opts)
	if err != nil {
		return err
	}
	if err := printConsole(cmd.ErrOrStderr(), res, opts, common); err != nil {
		log.Error(err, "console output failed")
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Path)
	return nil
}
