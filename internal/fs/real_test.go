package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestReal_Exists_ReturnsFalseForNonExistent verifies that Exists() returns
// (false, nil) for files that don't exist - not an error.
func TestReal_Exists_ReturnsFalseForNonExistent(t *testing.T) {
	t.Parallel()

	fsys := NewReal()

	exists, err := fsys.Exists(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err != nil {
		t.Fatalf("err=%v, want=nil", err)
	}

	if got, want := exists, false; got != want {
		t.Fatalf("exists=%v, want=%v", got, want)
	}
}

func TestReal_Exists_ReturnsTrueForFileAndDirectory(t *testing.T) {
	t.Parallel()

	fsys := NewReal()
	dir := t.TempDir()
	path := filepath.Join(dir, "exists.txt")

	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	for _, p := range []string{path, dir} {
		exists, err := fsys.Exists(p)
		if err != nil {
			t.Fatalf("Exists(%s) err=%v", p, err)
		}

		if !exists {
			t.Fatalf("Exists(%s)=false, want=true", p)
		}
	}
}

// TestReal_Exists_ReturnsErrorThroughFile verifies that a path whose parent
// is a regular file reports an error rather than "not found".
func TestReal_Exists_ReturnsErrorThroughFile(t *testing.T) {
	t.Parallel()

	fsys := NewReal()
	file := filepath.Join(t.TempDir(), "file")

	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	exists, err := fsys.Exists(filepath.Join(file, "child"))
	if exists {
		t.Fatalf("exists=true, want=false")
	}

	// ENOTDIR is reported as an error on Linux; some platforms report not-exist.
	if err != nil && errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v should not be ErrNotExist", err)
	}
}

func TestReal_WriteFileAtomic_ReplacesContentAndAppliesPerm(t *testing.T) {
	t.Parallel()

	fsys := NewReal()
	path := filepath.Join(t.TempDir(), "history")

	if err := fsys.WriteFileAtomic(path, []byte("first\n"), 0o600); err != nil {
		t.Fatalf("first write: %v", err)
	}

	if err := fsys.WriteFileAtomic(path, []byte("second\n"), 0o600); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if got, want := string(data), "second\n"; got != want {
		t.Fatalf("content=%q, want=%q", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if got, want := info.Mode().Perm(), os.FileMode(0o600); got != want {
		t.Fatalf("perm=%v, want=%v", got, want)
	}
}

func TestReal_WriteFileAtomic_FailsWhenDirMissing(t *testing.T) {
	t.Parallel()

	fsys := NewReal()
	path := filepath.Join(t.TempDir(), "missing", "history")

	if err := fsys.WriteFileAtomic(path, []byte("x"), 0o600); err == nil {
		t.Fatal("expected error writing into missing directory")
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := fsys.WriteFileAtomic(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write after mkdir: %v", err)
	}
}
