// main.go implements extract-template-versions: it reports the boilerplate
// and packages template versions a stack was generated from.
package main

import (
	"strings"

	"github.com/example/stackci/internal/cliutil"
	"github.com/example/stackci/internal/versions"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

func main() {
	cliutil.Main(newRootCommand())
}

func newRootCommand() *cobra.Command {
	opts := versions.NewOptions()
	common := &cliutil.Common{}
	cmd := cliutil.NewRoot("extract-template-versions", "Extract template versions for a stack", common,
		func(cmd *cobra.Command, log logr.Logger) error {
			if err := opts.Validate(); err != nil {
				cmd.PrintErrf("Error: %v\n", err)
				return cliutil.ErrUsage
			}
			_, err := versions.Run(log, opts, cmd.OutOrStdout())
			return err
		})
	cmd.Long = strings.TrimSpace(`
Scans <stack-dir>/.boilerplate/_template_*.json and the stack's packages.yml
(or packages.yaml) and prints the discovered versions as "name@version"
entries joined with ", ", or "-" when there are none.
`)
	cmd.Example = strings.TrimSpace(`
  # Print the versions of a stack
  extract-template-versions --stack-dir env/prod/service

  # Publish them as a step output
  extract-template-versions --stack-dir env/prod/service --github-output "$GITHUB_OUTPUT" --output-key template-version
`)
	opts.BindFlags(cmd.Flags())
	return cliutil.Finalize(cmd)
}
