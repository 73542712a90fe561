// boilerplate.go reads the scaffolding metadata files boilerplate leaves in a
// stack's .boilerplate directory.
package versions

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/example/stackci/internal/jsonval"
	"github.com/go-logr/logr"
)

const (
	boilerplateDir     = ".boilerplate"
	boilerplatePattern = "_template_*.json"
)

// BoilerplateVersions returns one entry per metadata file with a version,
// in file name order: "name@version", or just "version" when unnamed.
// Unreadable or malformed files are skipped.
func BoilerplateVersions(log logr.Logger, stackDir string) []string {
	dir := filepath.Join(stackDir, boilerplateDir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, boilerplatePattern))
	if err != nil {
		return nil
	}
	sort.Strings(matches)

	var entries []string
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			log.V(1).Info("skipping boilerplate file", "path", path, "error", err.Error())
			continue
		}
		meta, err := jsonval.DecodeObject(data)
		if err != nil {
			log.V(1).Info("skipping boilerplate file", "path", path, "error", err.Error())
			continue
		}
		name := meta.TrimmedOr("name", "")
		version := meta.TrimmedOr("version", "")
		if version == "" {
			continue
		}
		if name != "" {
			entries = append(entries, name+"@"+version)
		} else {
			entries = append(entries, version)
		}
	}
	return entries
}
