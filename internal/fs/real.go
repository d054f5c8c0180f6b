package fs

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// Real implements [FS] using the real filesystem.
type Real struct{}

// NewReal returns a new [Real] filesystem.
func NewReal() *Real {
	return &Real{}
}

// A passthrough wrapper for [os.ReadFile].
func (r *Real) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileAtomic writes data via [atomic.WriteFile] and then applies perm.
func (r *Real) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	err := atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("atomic write %s: %w", path, err)
	}

	err = os.Chmod(path, perm)
	if err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}

	return nil
}

// A passthrough wrapper for [os.MkdirAll].
func (r *Real) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Exists checks if a file exists using [os.Stat].
func (r *Real) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// Compile-time interface check.
var _ FS = (*Real)(nil)
