package alloc

import "errors"

var (
	// ErrCapacity is returned by constructors given a capacity of zero or less.
	ErrCapacity = errors.New("capacity must be greater than 0")

	// ErrNoFreeID is returned by Acquire when a bounded pool is exhausted.
	ErrNoFreeID = errors.New("no free id")

	// ErrNotAcquired is returned by Release for an id or key that is not
	// currently held: never issued, already released, or out of range.
	ErrNotAcquired = errors.New("id is not acquired")
)
