package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClearDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	files := []string{"a.svg", filepath.Join("sub", "b.png")}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("data"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	count, bytes, err := clearDir(dir)
	if err != nil {
		t.Fatalf("clearDir: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if bytes != 8 {
		t.Errorf("bytes = %d, want 8", bytes)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir not empty after clear: %d entries", len(entries))
	}
}

func TestClearDirMissing(t *testing.T) {
	count, bytes, err := clearDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("clearDir: %v", err)
	}
	if count != 0 || bytes != 0 {
		t.Errorf("count, bytes = %d, %d, want 0, 0", count, bytes)
	}
}
