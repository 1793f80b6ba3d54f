package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/pddlkit/internal/config"
	"github.com/kingrea/pddlkit/internal/scaffold"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestGenerateYAMLDescription(t *testing.T) {
	project := t.TempDir()
	stdout, _, err := execute(t, "--project", project, "generate", filepath.Join("testdata", "aircargo.yaml"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	domainPath := filepath.Join(project, "domain.pddl")
	problemPath := filepath.Join(project, "problem.pddl")
	if !strings.Contains(stdout, domainPath) || !strings.Contains(stdout, problemPath) {
		t.Fatalf("summary should list both documents, got:\n%s", stdout)
	}
	if domain := readFile(t, domainPath); !strings.HasPrefix(domain, "(define (domain aircargo)") {
		t.Fatalf("unexpected domain document:\n%s", domain)
	}
	problem := readFile(t, problemPath)
	for _, want := range []string{"(:domain aircargo)", "(:goal (and (cargo-at c1 jfk) (cargo-at c2 sfo)))"} {
		if !strings.Contains(problem, want) {
			t.Fatalf("expected %q in:\n%s", want, problem)
		}
	}
	if _, err := os.Stat(filepath.Join(project, config.StateDir, "logs", "pddlgen.log")); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}

func TestGenerateGoDescriptionWithOptions(t *testing.T) {
	project := t.TempDir()
	out := filepath.Join(t.TempDir(), "docs")
	_, _, err := execute(t,
		"--project", project,
		"generate", filepath.Join("testdata", "gridcar.go"),
		"--out", out,
		"--domain", "grid-domain",
		"--problem", "grid-problem.pddl",
		"--options-file", filepath.Join("testdata", "options.yaml"),
		"--goal", "goal=2_2",
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "grid-domain.pddl")); err != nil {
		t.Fatalf("expected domain document: %v", err)
	}
	problem := readFile(t, filepath.Join(out, "grid-problem.pddl"))
	for _, want := range []string{"(:init (at car1 cell-1-1)", "(:goal (at car1 cell-2-2))"} {
		if !strings.Contains(problem, want) {
			t.Fatalf("expected %q in:\n%s", want, problem)
		}
	}
}

func TestGenerateRespectsProjectConfig(t *testing.T) {
	project := t.TempDir()
	cfg := "version: 1\noutput:\n  dir: build\n  domain: d\n  problem: p\nlog:\n  level: warn\n  file: \"\"\n"
	if err := os.WriteFile(filepath.Join(project, config.FileName), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := execute(t, "--project", project, "generate", filepath.Join("testdata", "aircargo.yaml")); err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, name := range []string{"d.pddl", "p.pddl"} {
		if _, err := os.Stat(filepath.Join(project, "build", name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing description", args: []string{"generate", filepath.Join("testdata", "missing.yaml")}, want: "missing.yaml"},
		{name: "bad override", args: []string{"generate", filepath.Join("testdata", "gridcar.go"), "--init", "start"}, want: "expected key=value"},
		{name: "options file is dir", args: []string{"generate", filepath.Join("testdata", "gridcar.go"), "--options-file", "testdata"}, want: "is a directory"},
		{name: "same document", args: []string{"generate", filepath.Join("testdata", "gridcar.go"), "--domain", "x", "--problem", "x"}, want: "both be written"},
		{name: "no args", args: []string{"generate"}, want: "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--project", t.TempDir()}, tt.args...)
			_, _, err := execute(t, args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestInitNonInteractive(t *testing.T) {
	project := t.TempDir()
	target := filepath.Join(project, "descriptions", "aircargo.yaml")
	args := []string{
		"--project", project, "init", target,
		"--name", "air-cargo", "--types", "cargo plane airport",
		"--predicates", "at in", "--actions", "load fly",
		"--with-config",
	}
	stdout, _, err := execute(t, args...)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("summary should mention %s, got:\n%s", target, stdout)
	}
	if text := readFile(t, target); !strings.Contains(text, "Air_cargoDomain") {
		t.Fatalf("unexpected skeleton:\n%s", text)
	}
	if _, err := os.Stat(filepath.Join(project, config.FileName)); err != nil {
		t.Fatalf("expected project config: %v", err)
	}

	_, _, err = execute(t, args...)
	if !errors.Is(err, scaffold.ErrExists) {
		t.Fatalf("expected ErrExists on second run, got %v", err)
	}
}

func TestInitRejectsUnknownExtension(t *testing.T) {
	_, _, err := execute(t, "--project", t.TempDir(), "init", filepath.Join(t.TempDir(), "x.txt"), "--name", "x")
	if err == nil || !strings.Contains(err.Error(), "must end in") {
		t.Fatalf("expected extension error, got %v", err)
	}
}

func TestGenerateLeavesNoDocumentsOnRenderFailure(t *testing.T) {
	out := t.TempDir()
	_, _, err := execute(t,
		"--project", t.TempDir(),
		"generate", filepath.Join("testdata", "gridcar.go"),
		"--out", out,
		"--goal", "goal=9_9",
	)
	if err == nil || !strings.Contains(err.Error(), "9_9") {
		t.Fatalf("expected lookup error for 9_9, got %v", err)
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("read out dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no documents, found %d entries", len(entries))
	}
}
