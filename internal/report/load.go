package report

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/example/stackci/internal/jsonval"
	"github.com/example/stackci/internal/summary"
	"github.com/go-logr/logr"
)

// Load reads every *.json summary record in dir. It returns the decoded
// records and the number of candidate files found; files that cannot be read
// or decoded count as found but are dropped.
func Load(log logr.Logger, dir string) ([]summary.Record, int) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, 0
	}
	sort.Strings(matches)

	var records []summary.Record
	found := 0
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		found++
		data, err := os.ReadFile(path)
		if err != nil {
			log.V(1).Info("skipping summary", "path", path, "error", err.Error())
			continue
		}
		obj, err := jsonval.DecodeObject(data)
		if err != nil {
			log.V(1).Info("skipping summary", "path", path, "error", err.Error())
			continue
		}
		records = append(records, recordFromObject(obj))
	}
	return records, found
}

func recordFromObject(obj jsonval.Object) summary.Record {
	return summary.Record{
		Stack:           obj.String("stack"),
		HasChanges:      obj.Bool("hasChanges"),
		JobStatus:       obj.StringOr("jobStatus", ""),
		Summary:         obj.StringOr("summary", ""),
		TemplateVersion: obj.StringOr("templateVersion", summary.DefaultTemplateVersion),
		PlanURL:         obj.StringOr("planUrl", ""),
	}
}
