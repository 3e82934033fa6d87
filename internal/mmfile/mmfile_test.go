package mmfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ini")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := Open(path, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if f.Len() != 0 {
		t.Fatalf("expected zero-length contents, got %d", f.Len())
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpenLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.ini")
	if err := os.WriteFile(path, []byte("k=0123456789\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Open(path, 4); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	f, err := Open(path, 64)
	if err != nil {
		t.Fatalf("Open under limit: %v", err)
	}
	defer f.Close()
	if f.Len() != 13 {
		t.Fatalf("len mismatch: got %d want 13", f.Len())
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.ini"), 0)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
