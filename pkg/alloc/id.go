package alloc

func NewID() *ID {
	return &ID{
		used: make(map[uint32]bool),
	}
}

// ID issues monotonically increasing ids and reuses released ones,
// oldest release first. Fresh ids start at 0.
type ID struct {
	next      uint32
	used      map[uint32]bool
	reclaimed []uint32
}

// Acquire returns the oldest released id if any is waiting, otherwise
// the next fresh one. Acquire never fails: when next passes the top of
// the uint32 space it wraps back to 0, which can hand out an id that is
// still in use. Callers keeping anywhere near 1<<32 ids alive need a
// wider id space than this allocator offers.
func (i *ID) Acquire() (uint32, error) {
	if len(i.reclaimed) > 0 {
		id := i.reclaimed[0]
		i.reclaimed = i.reclaimed[1:]
		i.used[id] = true
		return id, nil
	}
	id := i.next
	i.next++
	i.used[id] = true
	return id, nil
}

// Release queues id for reuse. It fails with ErrNotAcquired if id is
// not currently held.
func (i *ID) Release(id uint32) error {
	if !i.used[id] {
		return ErrNotAcquired
	}
	delete(i.used, id)
	i.reclaimed = append(i.reclaimed, id)
	return nil
}

func (i *ID) IsUsed(id uint32) bool {
	return i.used[id]
}

// Used returns the ids currently held, sorted ascending.
func (i *ID) Used() []uint32 {
	return sortedIDs(i.used)
}
