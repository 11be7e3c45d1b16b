package alloc

func NewBounded(capacity int) (*Bounded, error) {
	if capacity <= 0 {
		return nil, ErrCapacity
	}
	b := &Bounded{
		capacity: capacity,
		free:     make([]uint32, capacity),
		used:     make(map[uint32]bool, capacity),
	}
	for i := range b.free {
		b.free[i] = uint32(i)
	}
	return b, nil
}

// Bounded draws ids from a fixed pool seeded with every id in
// [0, capacity). Released ids go to the back of the pool, so a fresh
// allocator issues ascending ids as a convenience, not a guarantee.
type Bounded struct {
	capacity int
	free     []uint32
	used     map[uint32]bool
}

// Acquire pops the front of the pool. It fails with ErrNoFreeID once
// every id is in use.
func (b *Bounded) Acquire() (uint32, error) {
	if len(b.free) == 0 {
		return 0, ErrNoFreeID
	}
	id := b.free[0]
	b.free = b.free[1:]
	b.used[id] = true
	return id, nil
}

// Release returns id to the pool. It fails with ErrNotAcquired if id
// is outside [0, capacity) or not currently held.
func (b *Bounded) Release(id uint32) error {
	if id >= uint32(b.capacity) || !b.used[id] {
		return ErrNotAcquired
	}
	delete(b.used, id)
	b.free = append(b.free, id)
	return nil
}

func (b *Bounded) Capacity() int {
	return b.capacity
}

func (b *Bounded) IsUsed(id uint32) bool {
	return b.used[id]
}

// Used returns the ids currently held, sorted ascending.
func (b *Bounded) Used() []uint32 {
	return sortedIDs(b.used)
}

// Free returns a copy of the pool in the order ids will be issued.
func (b *Bounded) Free() []uint32 {
	free := make([]uint32, len(b.free))
	copy(free, b.free)
	return free
}

// UsedPercentage reports how much of the pool is in use, 0 to 100.
func (b *Bounded) UsedPercentage() float64 {
	return float64(len(b.used)) / float64(b.capacity) * 100
}
