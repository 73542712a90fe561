package report

import (
	"strings"
	"time"

	"github.com/example/stackci/internal/jsonval"
	"github.com/example/stackci/internal/summary"
	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
)

// Options controls build-summary.
type Options struct {
	SummariesDir  string
	StacksJSON    string
	GitHubRunID   string
	CommitSHA     string
	IsPullRequest string
	OutputFile    string
	GitHubOutput  string
	Preview       bool
	Console       bool

	// Now supplies the footer time; defaults to time.Now.
	Now func() time.Time
}

// NewOptions returns report options with defaults.
func NewOptions() *Options {
	return &Options{
		SummariesDir: "summaries",
		StacksJSON:   "[]",
		Now:          time.Now,
	}
}

// RequiredFlags lists the flags that must be provided.
var RequiredFlags = []string{"github-run-id", "commit-sha", "is-pull-request", "output-file"}

// BindFlags attaches the aggregator flags to fs.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.SummariesDir, "summaries-dir", o.SummariesDir, "Directory holding per-stack summary JSON files")
	fs.StringVar(&o.StacksJSON, "stacks-json", o.StacksJSON, "JSON list of stacks in this run (used for the header count)")
	fs.StringVar(&o.GitHubRunID, "github-run-id", o.GitHubRunID, "Workflow run id embedded in the pull-request marker")
	fs.StringVar(&o.CommitSHA, "commit-sha", o.CommitSHA, "Commit the plans were built from")
	fs.StringVar(&o.IsPullRequest, "is-pull-request", o.IsPullRequest, "Render the pull-request comment variant (1/true/yes/y are true)")
	fs.StringVar(&o.OutputFile, "output-file", o.OutputFile, "Path of the markdown report to write")
	fs.StringVar(&o.GitHubOutput, "github-output", o.GitHubOutput, "Append file, success and has-changes to this key=value file")
	fs.BoolVar(&o.Preview, "preview", o.Preview, "Render the report on stderr")
	fs.BoolVar(&o.Console, "console", o.Console, "Print the status table on stderr even when it is not a terminal")
}

// StackCount parses --stacks-json. Malformed input counts as an empty list.
func (o *Options) StackCount(log logr.Logger) int {
	raw := strings.TrimSpace(o.StacksJSON)
	if raw == "" {
		return 0
	}
	n, err := jsonval.Len([]byte(raw))
	if err != nil {
		log.V(1).Info("ignoring malformed --stacks-json", "error", err.Error())
		return 0
	}
	return n
}

// Footer builds the footer metadata from the options.
func (o *Options) Footer() Footer {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	return Footer{
		RunID:       o.GitHubRunID,
		CommitSHA:   o.CommitSHA,
		PullRequest: summary.ParseBool(o.IsPullRequest),
		Time:        now(),
	}
}
