package report

import (
	"sort"
	"strings"

	"github.com/example/stackci/internal/summary"
)

// envRank orders dev stacks before prod stacks before everything else.
func envRank(stack string) int {
	switch {
	case strings.Contains(stack, "/dev/"):
		return 0
	case strings.Contains(stack, "/prod/"):
		return 1
	default:
		return 2
	}
}

// normalizeStack drops the first /dev/ and the first /prod/ segment so the
// dev and prod variants of a stack sort next to each other.
func normalizeStack(stack string) string {
	stack = strings.Replace(stack, "/dev/", "/", 1)
	return strings.Replace(stack, "/prod/", "/", 1)
}

// SortRecords orders records by normalized stack, then environment rank,
// then raw stack identifier.
func SortRecords(records []summary.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Stack, records[j].Stack
		if na, nb := normalizeStack(a), normalizeStack(b); na != nb {
			return na < nb
		}
		if ra, rb := envRank(a), envRank(b); ra != rb {
			return ra < rb
		}
		return a < b
	})
}
