// record.go defines the per-stack summary artifact shared by write-job-summary
// and build-summary.
package summary

import (
	"regexp"
	"strings"
)

// DefaultTemplateVersion is recorded when no template version is known.
const DefaultTemplateVersion = "-"

// StatusSuccess is the job status that marks a successful plan.
const StatusSuccess = "success"

// Record is one stack's plan outcome. Field order matches the artifact layout.
type Record struct {
	Stack           string `json:"stack"`
	HasChanges      bool   `json:"hasChanges"`
	JobStatus       string `json:"jobStatus"`
	Summary         string `json:"summary"`
	TemplateVersion string `json:"templateVersion"`
	PlanURL         string `json:"planUrl"`
}

// Succeeded reports whether the job finished with StatusSuccess.
func (r Record) Succeeded() bool {
	return r.JobStatus == StatusSuccess
}

var (
	artifactUnsafe = regexp.MustCompile(`[^A-Za-z0-9-]`)
	hyphenRuns     = regexp.MustCompile(`-{2,}`)
)

// ArtifactName derives the artifact base name for a stack: every character
// outside [A-Za-z0-9-] becomes '-', runs of hyphens collapse to one and edge
// hyphens are dropped, then "summary-" is prefixed.
func ArtifactName(stack string) string {
	cleaned := artifactUnsafe.ReplaceAllString(stack, "-")
	cleaned = hyphenRuns.ReplaceAllString(cleaned, "-")
	cleaned = strings.Trim(cleaned, "-")
	return "summary-" + cleaned
}

// ParseBool accepts 1, true, yes and y (any case, surrounding space ignored).
// Everything else is false.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// FormatBool renders b the way pipeline outputs expect it.
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
