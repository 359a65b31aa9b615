package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	dupecheck "github.com/kailas-cloud/dupecheck/pkg/sdk"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--driver", "sqlite", "--path", dbPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_AddListSimilarWords(t *testing.T) {
	db := filepath.Join(t.TempDir(), "corpus.db")

	out, err := run(t, db, "add", "How", "do", "I", "reset", "my", "password?")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.HasPrefix(out, "✓ added ") {
		t.Errorf("add output = %q", out)
	}
	if _, err := run(t, db, "add", "red blue green"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err = run(t, db, "ls")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("ls lines = %d, want 2: %q", len(lines), out)
	}
	if !strings.HasSuffix(lines[0], "How do I reset my password?") || !strings.HasSuffix(lines[1], "red blue green") {
		t.Errorf("ls order wrong: %q", out)
	}

	out, err = run(t, db, "count")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if strings.TrimSpace(out) != "2/10" {
		t.Errorf("count = %q, want 2/10", out)
	}

	out, err = run(t, db, "similar", "how do i reset my password")
	if err != nil {
		t.Fatalf("similar: %v", err)
	}
	if !strings.HasPrefix(out, "1 similar question\n") {
		t.Errorf("similar output = %q", out)
	}

	out, err = run(t, db, "words", "Blue yellow")
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if !strings.Contains(out, "1 matching question") || !strings.Contains(out, "[blue]") {
		t.Errorf("words output = %q", out)
	}
}

func TestCLI_CapacityAndRemove(t *testing.T) {
	db := filepath.Join(t.TempDir(), "corpus.db")

	out, err := run(t, db, "--capacity", "1", "add", "first")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	id := strings.TrimSpace(strings.TrimPrefix(out, "✓ added "))

	_, err = run(t, db, "--capacity", "1", "add", "second")
	if !errors.Is(err, dupecheck.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	if _, err := run(t, db, "rm", id); err != nil {
		t.Fatalf("rm: %v", err)
	}
	if _, err := run(t, db, "rm", id); !errors.Is(err, dupecheck.ErrQuestionNotFound) {
		t.Errorf("second rm: expected ErrQuestionNotFound, got %v", err)
	}

	out, err = run(t, db, "ls")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	if strings.TrimSpace(out) != "corpus is empty" {
		t.Errorf("ls = %q, want corpus is empty", out)
	}
}

func TestCLI_NoMatches(t *testing.T) {
	db := filepath.Join(t.TempDir(), "corpus.db")
	out, err := run(t, db, "similar", "anything")
	if err != nil {
		t.Fatalf("similar: %v", err)
	}
	if strings.TrimSpace(out) != "0 similar questions" {
		t.Errorf("output = %q", out)
	}
}

func TestCLI_UnknownDriver(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--driver", "mongo", "ls"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestCLI_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), "commit") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestScoreString(t *testing.T) {
	if got := scoreString(97.5); got != " 97.50%" {
		t.Errorf("scoreString(97.5) = %q", got)
	}
}
