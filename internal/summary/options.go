package summary

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

// Options holds the write-job-summary inputs.
type Options struct {
	Stack           string
	JobStatus       string
	HasChanges      string
	Summary         string
	TemplateVersion string
	PlanURL         string
	OutputDir       string
	OutputFile      string
	GitHubOutput    string
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		TemplateVersion: DefaultTemplateVersion,
		OutputDir:       "/tmp",
	}
}

// RequiredFlags lists the flags that must be provided.
var RequiredFlags = []string{"stack", "job-status", "has-changes"}

// BindFlags attaches the writer flags to fs.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Stack, "stack", o.Stack, "Stack identifier, e.g. env/prod/service")
	fs.StringVar(&o.JobStatus, "job-status", o.JobStatus, "Status of the plan job (success, failure, cancelled, ...)")
	fs.StringVar(&o.HasChanges, "has-changes", o.HasChanges, "Whether the plan detected changes (1/true/yes/y are true)")
	fs.StringVar(&o.Summary, "summary", o.Summary, "Free-text plan summary")
	fs.StringVar(&o.TemplateVersion, "template-version", o.TemplateVersion, "Template version string for the stack")
	fs.StringVar(&o.PlanURL, "plan-url", o.PlanURL, "Link to the full plan output")
	fs.StringVar(&o.OutputDir, "output-dir", o.OutputDir, "Directory for the summary artifact")
	fs.StringVar(&o.OutputFile, "output-file", o.OutputFile, "Explicit artifact path (overrides --output-dir)")
	fs.StringVar(&o.GitHubOutput, "github-output", o.GitHubOutput, "Append artifact-name and file to this key=value file")
}

// Record builds the artifact payload from the options.
func (o *Options) Record() Record {
	return Record{
		Stack:           o.Stack,
		HasChanges:      ParseBool(o.HasChanges),
		JobStatus:       o.JobStatus,
		Summary:         o.Summary,
		TemplateVersion: o.TemplateVersion,
		PlanURL:         o.PlanURL,
	}
}

// ResolveOutputPath picks the artifact path: the explicit file when set,
// otherwise {output-dir}/{artifact-name}.json. The result is always cleaned.
func (o *Options) ResolveOutputPath() string {
	if strings.TrimSpace(o.OutputFile) != "" {
		return filepath.Clean(o.OutputFile)
	}
	return filepath.Join(o.OutputDir, ArtifactName(o.Stack)+".json")
}
