package alloc

func NewKeys(capacity int) (*Keys, error) {
	id, err := NewBounded(capacity)
	if err != nil {
		return nil, err
	}
	return &Keys{
		id:   id,
		keys: make(map[string]uint32),
	}, nil
}

// Keys leases ids from a bounded pool by string key. Acquiring a key
// that already holds a lease returns its existing id.
type Keys struct {
	id   *Bounded
	keys map[string]uint32
}

func (k *Keys) Acquire(key string) (id uint32, err error) {
	if id, ok := k.keys[key]; ok {
		return id, nil
	}
	if id, err = k.id.Acquire(); err == nil {
		k.keys[key] = id
	}
	return
}

func (k *Keys) Release(key string) error {
	id, ok := k.keys[key]
	if !ok {
		return ErrNotAcquired
	}
	delete(k.keys, key)
	return k.id.Release(id)
}

// Len returns the number of live leases.
func (k *Keys) Len() int {
	return len(k.keys)
}
