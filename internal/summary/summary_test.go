package summary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestParseBool(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", "True", "yes", "YES", "y", "Y", " true ", "\tyes\n"}
	for _, in := range truthy {
		if !ParseBool(in) {
			t.Fatalf("ParseBool(%q) should be true", in)
		}
	}
	falsy := []string{"", "0", "false", "no", "n", "on", "2", "truthy", "yes please"}
	for _, in := range falsy {
		if ParseBool(in) {
			t.Fatalf("ParseBool(%q) should be false", in)
		}
	}
}

func TestArtifactName(t *testing.T) {
	tests := []struct {
		stack string
		want  string
	}{
		{"env/dev/my service!!", "summary-env-dev-my-service"},
		{"env/prod/service-name", "summary-env-prod-service-name"},
		{"a//b", "summary-a-b"},
		{"a--b", "summary-a-b"},
		{"/leading/slash", "summary-leading-slash"},
		{"ünïcode/stack", "summary-n-code-stack"},
		{"plain", "summary-plain"},
	}
	for _, tt := range tests {
		if got := ArtifactName(tt.stack); got != tt.want {
			t.Fatalf("ArtifactName(%q)=%q want %q", tt.stack, got, tt.want)
		}
	}
}

func TestResolveOutputPath(t *testing.T) {
	opts := NewOptions()
	opts.Stack = "env/dev/app"
	if got := opts.ResolveOutputPath(); got != "/tmp/summary-env-dev-app.json" {
		t.Fatalf("default path=%q", got)
	}
	opts.OutputDir = "out"
	if got := opts.ResolveOutputPath(); got != filepath.Join("out", "summary-env-dev-app.json") {
		t.Fatalf("dir path=%q", got)
	}
	opts.OutputFile = "explicit.json"
	if got := opts.ResolveOutputPath(); got != "explicit.json" {
		t.Fatalf("explicit path=%q", got)
	}
	opts.OutputFile = "./out//nested/../r.json"
	if got := opts.ResolveOutputPath(); got != filepath.Join("out", "r.json") {
		t.Fatalf("uncleaned explicit path=%q", got)
	}
}

func TestMarshalIsCompactAndOrdered(t *testing.T) {
	data, err := Marshal(Record{
		Stack:           "env/prod/app",
		HasChanges:      true,
		JobStatus:       "success",
		Summary:         "Plan: 1 to add",
		TemplateVersion: "-",
		PlanURL:         "https://example.com/run?id=1&attempt=2",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"stack":"env/prod/app","hasChanges":true,"jobStatus":"success","summary":"Plan: 1 to add","templateVersion":"-","planUrl":"https://example.com/run?id=1&attempt=2"}`
	if string(data) != want {
		t.Fatalf("unexpected payload:\n got %s\nwant %s", data, want)
	}
}

func TestWriteOverwritesAndCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "summary.json")
	if err := Write(path, Record{Stack: "old"}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	opts := NewOptions()
	opts.Stack = "env/dev/app"
	opts.JobStatus = "failure"
	opts.HasChanges = "yes"
	if err := Write(path, opts.Record()); err != nil {
		t.Fatalf("second write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Record{Stack: "env/dev/app", HasChanges: true, JobStatus: "failure", TemplateVersion: "-"}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}
