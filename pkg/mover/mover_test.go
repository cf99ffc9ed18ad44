package mover

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/menta2k/dataprep/pkg/enumerate"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestMover(t *testing.T, cfg Config) *Mover {
	t.Helper()
	m, err := New(testLogger(), cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestRunMovesAllFiles(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "staged")
	writeFile(t, filepath.Join(src, "a.jpg"), "a")
	writeFile(t, filepath.Join(src, "b.txt"), "b")

	m := newTestMover(t, Config{})
	summary, err := m.Run(src, dst)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Succeeded() != 2 {
		t.Fatalf("Expected 2 moves, got %d", summary.Succeeded())
	}

	for _, name := range []string{"a.jpg", "b.txt"} {
		if _, err := os.Stat(filepath.Join(src, name)); !os.IsNotExist(err) {
			t.Errorf("%s should no longer exist at source", name)
		}
		if _, err := os.Stat(filepath.Join(dst, name)); err != nil {
			t.Errorf("%s should exist at destination: %v", name, err)
		}
	}
}

func TestRunWithExtensionFilter(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "move.jpg"), "x")
	writeFile(t, filepath.Join(src, "stay.png"), "y")

	m := newTestMover(t, Config{Filter: enumerate.Filter(".jpg")})
	summary, err := m.Run(src, dst)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Succeeded() != 1 {
		t.Errorf("Expected 1 move, got %d", summary.Succeeded())
	}

	if _, err := os.Stat(filepath.Join(src, "stay.png")); err != nil {
		t.Errorf("Unfiltered file should remain at source: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "move.jpg")); err != nil {
		t.Errorf("Filtered file should be at destination: %v", err)
	}
}

func TestRunCollisionSkipByDefault(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "same.txt"), "new")
	writeFile(t, filepath.Join(dst, "same.txt"), "old")

	m := newTestMover(t, Config{})
	summary, err := m.Run(src, dst)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Skipped() != 1 {
		t.Errorf("Expected 1 skip, got %d", summary.Skipped())
	}

	// Both files untouched.
	if _, err := os.Stat(filepath.Join(src, "same.txt")); err != nil {
		t.Errorf("Skipped file should remain at source: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "same.txt"))
	if err != nil || string(data) != "old" {
		t.Errorf("Destination file should be untouched, got %q (%v)", data, err)
	}
}

func TestRunCollisionOverwrite(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "same.txt"), "new")
	writeFile(t, filepath.Join(dst, "same.txt"), "old")

	m := newTestMover(t, Config{OnCollision: Overwrite})
	summary, err := m.Run(src, dst)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Succeeded() != 1 {
		t.Errorf("Expected 1 move, got %d", summary.Succeeded())
	}

	data, err := os.ReadFile(filepath.Join(dst, "same.txt"))
	if err != nil || string(data) != "new" {
		t.Errorf("Destination should hold new content, got %q (%v)", data, err)
	}
	if _, err := os.Stat(filepath.Join(src, "same.txt")); !os.IsNotExist(err) {
		t.Error("Source file should be gone after overwrite move")
	}
}

func TestRunEmptySource(t *testing.T) {
	m := newTestMover(t, Config{})
	summary, err := m.Run(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("Run failed on empty source: %v", err)
	}
	if len(summary.Items) != 0 {
		t.Errorf("Expected no items, got %d", len(summary.Items))
	}
}

func TestRunMissingSource(t *testing.T) {
	m := newTestMover(t, Config{})
	_, err := m.Run(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	if !errors.Is(err, enumerate.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestNewRejectsUnknownPolicy(t *testing.T) {
	if _, err := New(testLogger(), Config{OnCollision: "rename"}); err == nil {
		t.Error("Expected error for unknown collision policy")
	}
}
