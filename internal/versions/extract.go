package versions

import (
	"strings"

	"github.com/go-logr/logr"
)

// Placeholder is reported when a stack declares no versions.
const Placeholder = "-"

// Extract collects boilerplate entries followed by packages manifest entries
// for stackDir, deduplicated in first-seen order.
func Extract(log logr.Logger, stackDir string) []string {
	entries := BoilerplateVersions(log, stackDir)
	entries = append(entries, PackagesVersions(log, stackDir)...)
	return Dedupe(entries)
}

// Dedupe drops empty values and repeats, keeping the first occurrence.
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Join renders entries as a single ", "-separated string, or Placeholder when
// there are none.
func Join(entries []string) string {
	if len(entries) == 0 {
		return Placeholder
	}
	return strings.Join(entries, ", ")
}
