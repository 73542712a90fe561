// ghoutput.go appends key=value pairs to a pipeline output-collection file
// (the file named by GITHUB_OUTPUT in GitHub Actions).
package ghoutput

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Pair is a single output entry.
type Pair struct {
	Key   string
	Value string
}

// P builds a Pair.
func P(key, value string) Pair {
	return Pair{Key: key, Value: value}
}

// Append opens path in append mode and writes one "key=value\n" line per pair.
// Each line is issued as its own write so parallel jobs sharing the file never
// interleave within a line. An empty path is a no-op.
func Append(path string, pairs ...Pair) error {
	if strings.TrimSpace(path) == "" || len(pairs) == 0 {
		return nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open output file %s", path)
	}
	for _, p := range pairs {
		if _, err := f.WriteString(p.Key + "=" + p.Value + "\n"); err != nil {
			f.Close()
			return errors.Wrapf(err, "write %s to %s", p.Key, path)
		}
	}
	return errors.Wrapf(f.Close(), "close output file %s", path)
}
