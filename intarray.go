// Package intarray implements borrowed views over contiguous int32 runs and
// the fixed-layout descriptor used to pass them across a C ABI.
//
// Nothing in this package owns element memory. A View or Descriptor refers to
// elements owned by the caller, and every view derived from it shares that
// memory.
package intarray

import "github.com/go-faster/errors"

var (
	// ErrEmpty is the panic value of First and Tail on an empty view.
	ErrEmpty = errors.New("empty view")
	// ErrNegativeLength is the panic value of Descriptor.View on a
	// descriptor with negative Length.
	ErrNegativeLength = errors.New("negative length")
)

// AddOne returns v + 1.
//
// Overflow wraps: AddOne(math.MaxInt32) is math.MinInt32.
func AddOne(v int32) int32 {
	return v + 1
}
