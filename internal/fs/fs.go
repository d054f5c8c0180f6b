// Package fs provides the small filesystem surface testclass needs.
//
// The main types are:
//   - [FS]: interface for the operations config loading and the REPL use
//   - [Real]: production implementation using [os] and atomic writes
//
// Example usage:
//
//	fsys := fs.NewReal()
//	data, err := fsys.ReadFile(".testclass.json")
//	if err != nil {
//	    return err
//	}
package fs

import "os"

// FS defines the filesystem operations used by config loading and REPL
// history persistence.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file atomically.
	// Uses a temp file + rename so readers never see a partial file.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates a directory and all parents. See [os.MkdirAll].
	MkdirAll(path string, perm os.FileMode) error

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)
}
