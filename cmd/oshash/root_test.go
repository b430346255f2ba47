package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	oshash "github.com/oshash/oshash/pkg"
)

// runCommand executes the root command with args and returns its stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Keep the user's real config out of the tests.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// writeHashableFile creates a file large enough for the algorithm, with
// contents varied by seed.
func writeHashableFile(t *testing.T, dir, name string, seed byte) string {
	t.Helper()

	content := make([]byte, oshash.MinFileSize+4096)
	for i := range content {
		content[i] = byte(i)*seed + seed
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", name, err)
	}
	return path
}

func TestRunNoFiles(t *testing.T) {
	_, err := runCommand(t)
	if err == nil {
		t.Fatal("expected an error when no files are given")
	}
	if !strings.Contains(err.Error(), "no files provided to hash") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunHashesFilesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeHashableFile(t, dir, "first.bin", 3)
	second := writeHashableFile(t, dir, "second.bin", 5)

	out, err := runCommand(t, first, second)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	wantFirst, err := oshash.HashFile(first)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	wantSecond, err := oshash.HashFile(second)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}

	expected := fmt.Sprintf("%s %s\n%s %s\n", wantFirst, first, wantSecond, second)
	if out != expected {
		t.Errorf("output = %q, expected %q", out, expected)
	}
}

func TestRunFailsOnMissingFile(t *testing.T) {
	dir := t.TempDir()
	good := writeHashableFile(t, dir, "good.bin", 3)
	missing := filepath.Join(dir, "missing.bin")

	_, err := runCommand(t, good, missing)
	if err == nil {
		t.Fatal("expected the batch to fail when one file is missing")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error does not name the failing file: %v", err)
	}
}

func TestRunFailsOnTooSmallFile(t *testing.T) {
	small := filepath.Join(t.TempDir(), "small.bin")
	if err := os.WriteFile(small, []byte("tiny"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := runCommand(t, small)
	if err == nil {
		t.Fatal("expected the batch to fail on a too-small file")
	}
	if !strings.Contains(err.Error(), "file size too small") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBenchPrintsSummaryInsteadOfDigests(t *testing.T) {
	dir := t.TempDir()
	file := writeHashableFile(t, dir, "bench.bin", 3)

	configPath := filepath.Join(dir, "config")
	if err := os.WriteFile(configPath, []byte("[bench]\niterations = 3\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	out, err := runCommand(t, "--bench", "--config", configPath, file)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("bench mode printed %d lines, expected only the summary: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Processed 1 files 3x in ") {
		t.Errorf("unexpected bench summary: %q", lines[0])
	}
}

func TestVerboseFlagSetsLevel(t *testing.T) {
	orig := oshash.GetVerboseLevel()
	defer oshash.SetVerboseLevel(orig)

	dir := t.TempDir()
	file := writeHashableFile(t, dir, "file.bin", 3)

	if _, err := runCommand(t, "-vv", file); err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if oshash.GetVerboseLevel() != 2 {
		t.Errorf("verbose level = %d after -vv, expected 2", oshash.GetVerboseLevel())
	}
}
