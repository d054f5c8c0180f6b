package fs

import (
	"errors"
	"os"
	"sync"
)

// Op names an [FS] operation for fault injection.
type Op string

// Operations that [Injected] can fail.
const (
	OpReadFile        Op = "ReadFile"
	OpWriteFileAtomic Op = "WriteFileAtomic"
	OpMkdirAll        Op = "MkdirAll"
	OpExists          Op = "Exists"
)

// InjectedError marks an error as intentionally injected by [Injected].
//
// It wraps the underlying error so errors.Is/As continue to work.
type InjectedError struct {
	Op  Op
	Err error
}

// Error returns the underlying error's message prefixed by the operation.
func (e *InjectedError) Error() string {
	return string(e.Op) + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *InjectedError) Unwrap() error {
	return e.Err
}

// IsInjected reports whether err (or any wrapped error) was injected by [Injected].
func IsInjected(err error) bool {
	var injected *InjectedError

	return errors.As(err, &injected)
}

// Injected wraps an [FS] and fails selected operations with fixed errors.
// Operations without a configured failure pass through to the wrapped FS.
//
// Safe for concurrent use.
type Injected struct {
	inner FS

	mu    sync.Mutex
	fails map[Op]error
	calls map[Op]int
}

// NewInjected returns an [Injected] wrapping inner.
func NewInjected(inner FS) *Injected {
	return &Injected{
		inner: inner,
		fails: make(map[Op]error),
		calls: make(map[Op]int),
	}
}

// Fail makes every later call of op return err wrapped in [InjectedError].
// A nil err clears the failure.
func (f *Injected) Fail(op Op, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err == nil {
		delete(f.fails, op)

		return
	}

	f.fails[op] = err
}

// Calls returns how many times op was called, including failed calls.
func (f *Injected) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[op]
}

func (f *Injected) check(op Op) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[op]++

	if err, ok := f.fails[op]; ok {
		return &InjectedError{Op: op, Err: err}
	}

	return nil
}

func (f *Injected) ReadFile(path string) ([]byte, error) {
	if err := f.check(OpReadFile); err != nil {
		return nil, err
	}

	return f.inner.ReadFile(path)
}

func (f *Injected) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := f.check(OpWriteFileAtomic); err != nil {
		return err
	}

	return f.inner.WriteFileAtomic(path, data, perm)
}

func (f *Injected) MkdirAll(path string, perm os.FileMode) error {
	if err := f.check(OpMkdirAll); err != nil {
		return err
	}

	return f.inner.MkdirAll(path, perm)
}

func (f *Injected) Exists(path string) (bool, error) {
	if err := f.check(OpExists); err != nil {
		return false, err
	}

	return f.inner.Exists(path)
}

// Compile-time interface check.
var _ FS = (*Injected)(nil)
