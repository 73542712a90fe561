// packages.go extracts Template/Ref pairs from a packages manifest.
package versions

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-logr/logr"
)

// PackagesFiles are the manifest names looked up in a stack directory; the
// first one present wins.
var PackagesFiles = []string{"packages.yml", "packages.yaml"}

type parserState int

const (
	stateOutside parserState = iota
	stateInPackages
)

var (
	manifestLine  = regexp.MustCompile(`^\s*(Packages|Template|Ref)\s*:(.*)$`)
	inlineComment = regexp.MustCompile(`\s+#`)
)

// PackagesVersions parses the first manifest found in stackDir. A missing or
// unreadable manifest yields no entries.
func PackagesVersions(log logr.Logger, stackDir string) []string {
	for _, name := range PackagesFiles {
		path := filepath.Join(stackDir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			log.V(1).Info("skipping packages manifest", "path", path, "error", err.Error())
			return nil
		}
		return ParsePackages(data)
	}
	return nil
}

// ParsePackages walks the manifest line by line. Lines before the Packages:
// header are ignored. Inside the section a Template: value is held for the
// next Ref: line only; each Ref produces one entry.
func ParsePackages(data []byte) []string {
	var entries []string
	state := stateOutside
	template := ""

	for _, line := range splitLines(string(data)) {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		m := manifestLine.FindStringSubmatch(line)
		if m != nil && m[1] == "Packages" {
			state = stateInPackages
			continue
		}
		if state != stateInPackages || m == nil || m[2] == "" {
			continue
		}
		switch m[1] {
		case "Template":
			template = cleanValue(m[2])
		case "Ref":
			if ref := cleanValue(m[2]); ref != "" {
				entries = append(entries, packageEntry(template, ref))
			}
			template = ""
		}
	}
	return entries
}

// splitLines breaks text at \n, \r\n and lone \r, plus the vertical tab,
// form feed, file/group/record separators, NEL and the Unicode line and
// paragraph separators.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			return true
		}
		return false
	})
}

// packageEntry turns a Template/Ref pair into an entry. A ref that starts with
// the template name (optionally followed by -, _ or v) yields
// "template@<rest>"; otherwise the ref is kept verbatim after "template@".
func packageEntry(template, ref string) string {
	if template == "" {
		return ref
	}
	re, err := regexp.Compile(`^` + regexp.QuoteMeta(template) + `[-_]?v?(.+)$`)
	if err == nil {
		if m := re.FindStringSubmatch(ref); m != nil {
			return template + "@" + m[1]
		}
	}
	return template + "@" + ref
}

// cleanValue strips surrounding space, a trailing " #comment" and one pair of
// matching quotes.
func cleanValue(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if loc := inlineComment.FindStringIndex(value); loc != nil {
		value = strings.TrimSpace(value[:loc[0]])
	}
	if len(value) >= 2 && value[0] == value[len(value)-1] && (value[0] == '\'' || value[0] == '"') {
		value = value[1 : len(value)-1]
	}
	return strings.TrimSpace(value)
}
