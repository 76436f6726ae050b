package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestReadLines(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "first.txt")
	if err := os.WriteFile(first, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}
	second := filepath.Join(dir, "second.txt")
	if err := os.WriteFile(second, []byte("three"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(context.Background(), []string{first, second})
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}

	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("ReadLines() returned %d lines, want %d", len(lines), len(want))
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestReadLines_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("ReadLines() returned %d lines, want 0", len(lines))
	}
}

func TestReadLines_KeepsBlankLines(t *testing.T) {
	// Blank lines are real input; dropping them is the pipeline's call,
	// not the reader's.
	path := filepath.Join(t.TempDir(), "gaps.txt")
	if err := os.WriteFile(path, []byte("a\n\nb\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(lines) != 3 {
		t.Errorf("ReadLines() returned %d lines, want 3", len(lines))
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := ReadLines(context.Background(), []string{"/nonexistent/input.txt"})
	if err == nil {
		t.Error("ReadLines() expected error for missing file")
	}
}

func TestReadLines_Cancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.txt")
	if err := os.WriteFile(path, []byte("line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadLines(ctx, []string{path})
	if err == nil {
		t.Error("ReadLines() expected error for cancelled context")
	}
}

func TestCollectLines_LongLine(t *testing.T) {
	// Lines longer than the scanner's default 64KB buffer must still fit.
	long := make([]byte, 100*1024)
	for i := range long {
		long[i] = 'x'
	}

	path := filepath.Join(t.TempDir(), "long.txt")
	if err := os.WriteFile(path, append(long, '\n'), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("ReadLines() returned %d lines, want 1", len(lines))
	}
	if len(lines[0]) != len(long) {
		t.Errorf("line length = %d, want %d", len(lines[0]), len(long))
	}
}
