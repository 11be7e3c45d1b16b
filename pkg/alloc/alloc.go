// Package alloc hands out unique uint32 identifiers.
//
// Two allocators implement the same contract: ID issues from an
// unbounded, monotonically growing space and reuses released ids,
// while Bounded draws from a fixed pool of [0, capacity). Keys adds
// string-keyed leases on top of Bounded, and Global exposes a
// process-wide counter for callers that only need an incrementing tag.
//
// Nothing in this package is safe for concurrent use. Callers sharing
// an allocator across goroutines must provide their own locking.
package alloc

import "sort"

// Allocator issues unique ids and takes them back for reuse.
type Allocator interface {
	Acquire() (uint32, error)
	Release(id uint32) error
}

func sortedIDs(used map[uint32]bool) []uint32 {
	ids := make([]uint32, 0, len(used))
	for id := range used {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}
