// Package testclass provides a stateless utility type with string,
// validation, list and arithmetic helpers, plus a small capability
// interface with a default operation.
//
// Every operation is a pure function of its inputs. Nothing is shared
// between calls, so a single [TestClass] may be used from any number of
// goroutines.
package testclass

import (
	"fmt"
	"strings"
)

// MaxRepeatCount is the largest count [BuildRepeatedList] accepts.
const MaxRepeatCount = 1 << 24

// repeatPrealloc caps the initial capacity; larger lists grow by append.
const repeatPrealloc = 1024

// TestClass groups the utility operations.
//
// The zero value is ready to use.
type TestClass struct {
	name  string
	value int
}

// New returns a TestClass with no stored arguments.
func New() *TestClass {
	return &TestClass{}
}

// NewNamed returns a TestClass that stores name and value.
// Neither argument affects any operation.
func NewNamed(name string, value int) *TestClass {
	return &TestClass{name: name, value: value}
}

// Name returns the name passed to [NewNamed].
func (c *TestClass) Name() string {
	return c.name
}

// Value returns the value passed to [NewNamed].
func (c *TestClass) Value() int {
	return c.value
}

// TransformToUpper returns input with every rune mapped to upper case.
//
// The mapping is locale independent ([strings.ToUpper]). A nil input
// returns [ErrNilInput]; an empty input returns "".
func (c *TestClass) TransformToUpper(input *string) (string, error) {
	if input == nil {
		return "", ErrNilInput
	}

	return strings.ToUpper(*input), nil
}

// IsValidInput reports whether input is present and non-empty.
func (c *TestClass) IsValidInput(input *string) bool {
	return input != nil && *input != ""
}

// Describe accepts a name, an age, a list of items and an active flag and
// does nothing with them. items is never modified.
func (c *TestClass) Describe(name string, age int, items []string, isActive bool) {}

// CalculateInts2 returns a + b. Overflow wraps.
func (c *TestClass) CalculateInts2(a, b int) int {
	return a + b
}

// CalculateFloats2 returns a + b.
func (c *TestClass) CalculateFloats2(a, b float64) float64 {
	return a + b
}

// CalculateInts3 returns a + b + c. Overflow wraps.
func (c *TestClass) CalculateInts3(a, b, cc int) int {
	return a + b + cc
}

// RiskyOperation always fails with [ErrOperationFailed].
func (c *TestClass) RiskyOperation() error {
	return ErrOperationFailed
}

// BuildRepeatedList returns a slice of length count where every element is
// item. A count of zero returns an empty, non-nil slice.
//
// Each slot holds a copy of item as Go assigns values, so for pointer,
// map or slice types all slots share the same referent.
//
// A negative count or one above [MaxRepeatCount] returns an error wrapping
// [ErrInvalidArgument].
func BuildRepeatedList[T any](item T, count int) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count must be >= 0, got %d", ErrInvalidArgument, count)
	}

	if count > MaxRepeatCount {
		return nil, fmt.Errorf("%w: count must be <= %d, got %d", ErrInvalidArgument, MaxRepeatCount, count)
	}

	list := make([]T, 0, min(count, repeatPrealloc))
	for range count {
		list = append(list, item)
	}

	return list, nil
}
