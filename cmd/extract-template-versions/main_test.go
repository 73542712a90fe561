package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/stackci/internal/cliutil"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("{}\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(cliutil.ConfigEnv, cfgPath)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExtractPrintsPlaceholderForEmptyStack(t *testing.T) {
	isolateConfig(t)
	out, err := run(t, "--stack-dir", t.TempDir())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "-\n" {
		t.Fatalf("stdout=%q", out)
	}
}

func TestExtractWritesGitHubOutput(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	stack := filepath.Join(dir, "stack")
	if err := os.MkdirAll(filepath.Join(stack, ".boilerplate"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(stack, ".boilerplate", "_template_svc.json"), []byte(`{"name":"svc","version":"1.2.3"}`), 0o644); err != nil {
		t.Fatalf("write boilerplate: %v", err)
	}
	if err := os.WriteFile(filepath.Join(stack, "packages.yml"), []byte("Packages:\n  Template: svc\n  Ref: svc-v1.2.3\n  Template: net\n  Ref: main\n"), 0o644); err != nil {
		t.Fatalf("write packages: %v", err)
	}
	ghOut := filepath.Join(dir, "gh")
	out, err := run(t, "--stack-dir", stack, "--github-output", ghOut)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "svc@1.2.3, net@main\n" {
		t.Fatalf("stdout=%q", out)
	}
	data, err := os.ReadFile(ghOut)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "result=svc@1.2.3, net@main\n" {
		t.Fatalf("github output=%q", data)
	}
}

func TestExtractRejectsUnknownFormat(t *testing.T) {
	isolateConfig(t)
	if _, err := run(t, "--stack-dir", t.TempDir(), "--format", "xml"); !errors.Is(err, cliutil.ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}
