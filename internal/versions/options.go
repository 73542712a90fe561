package versions

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Output formats for the printed result.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options holds the extract-template-versions inputs.
type Options struct {
	StackDir     string
	GitHubOutput string
	OutputKey    string
	OutputFile   string
	Format       string
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		StackDir:  ".",
		OutputKey: "result",
		Format:    FormatText,
	}
}

// BindFlags attaches the extractor flags to fs.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.StackDir, "stack-dir", o.StackDir, "Path to the stack directory")
	fs.StringVar(&o.GitHubOutput, "github-output", o.GitHubOutput, "Append <output-key>=<result> to this key=value file")
	fs.StringVar(&o.OutputKey, "output-key", o.OutputKey, "Key used for the --github-output entry")
	fs.StringVar(&o.OutputFile, "output-file", o.OutputFile, "Also write the result string to this file")
	fs.StringVar(&o.Format, "format", o.Format, "Printed result format: text, json, yaml")
}

// Validate normalizes and checks the options.
func (o *Options) Validate() error {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	if o.Format == "" {
		o.Format = FormatText
	}
	switch o.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (expected text, json, or yaml)", o.Format)
	}
	if strings.TrimSpace(o.StackDir) == "" {
		o.StackDir = "."
	}
	return nil
}

// Print writes entries to w in the configured format.
func (o *Options) Print(w io.Writer, entries []string) error {
	switch o.Format {
	case FormatJSON:
		if entries == nil {
			entries = []string{}
		}
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(entries)
	case FormatYAML:
		if entries == nil {
			entries = []string{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, Join(entries))
		return err
	}
}
