// Package cache provides a fixed-capacity most-recently-used index of live
// entries.
//
// The cache never owns its items: it aliases records owned by a store, and
// the store must call Remove or RemoveFunc before an aliased record leaves it.
// Slots are kept dense, so a probe stops at the first empty slot.
//
// Concurrency: none. The owning store serializes all access.
package cache

// Item is a cached record addressed by the hashes of its section and key.
type Item interface {
	comparable
	SectionHash() uint32
	KeyHash() uint32
}

// MRU is a fixed-capacity array of items, most recently used at index 0.
type MRU[T Item] struct {
	slots []T
	n     int // filled slots, always a prefix of slots
}

// New creates a cache with the given capacity. A capacity of 0 disables
// caching.
func New[T Item](capacity int) (*MRU[T], error) {
	c := &MRU[T]{}
	if err := c.Resize(capacity); err != nil {
		return nil, err
	}
	return c, nil
}

// Cap returns the configured capacity.
func (c *MRU[T]) Cap() int { return len(c.slots) }

// Len returns the number of filled slots.
func (c *MRU[T]) Len() int { return c.n }

// Enabled reports whether the capacity is nonzero.
func (c *MRU[T]) Enabled() bool { return len(c.slots) > 0 }

// Resize changes the capacity and empties the cache. A capacity of 0 frees the
// slot storage.
func (c *MRU[T]) Resize(capacity int) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	if capacity == 0 {
		c.slots = nil
		c.n = 0
		return nil
	}
	if cap(c.slots) >= capacity {
		c.slots = c.slots[:capacity]
	} else {
		c.slots = make([]T, capacity)
	}
	c.Reset()
	return nil
}

// Reset empties all slots without changing the capacity.
func (c *MRU[T]) Reset() {
	clear(c.slots)
	c.n = 0
}

// Probe scans from the most recent slot for an item with both hashes. When
// match is non-nil it must also accept the item. Probe does not reorder slots.
func (c *MRU[T]) Probe(sectionHash, keyHash uint32, match func(T) bool) (T, bool) {
	for i := 0; i < c.n; i++ {
		it := c.slots[i]
		if it.SectionHash() != sectionHash || it.KeyHash() != keyHash {
			continue
		}
		if match != nil && !match(it) {
			continue
		}
		return it, true
	}
	var zero T
	return zero, false
}

// Promote writes item at index 0, shifting the others one slot toward the tail
// and dropping the last one when full. An item already cached moves to the
// front instead of being duplicated.
func (c *MRU[T]) Promote(item T) error {
	if len(c.slots) == 0 {
		return ErrDisabled
	}
	end := c.indexOf(item)
	if end < 0 {
		end = c.n
		if end == len(c.slots) {
			end--
		} else {
			c.n++
		}
	}
	copy(c.slots[1:end+1], c.slots[:end])
	c.slots[0] = item
	return nil
}

// Contains reports whether item occupies a slot.
func (c *MRU[T]) Contains(item T) bool {
	return c.indexOf(item) >= 0
}

// Remove drops item from the cache, closing the gap it leaves.
func (c *MRU[T]) Remove(item T) bool {
	i := c.indexOf(item)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

// RemoveFunc drops every item for which fn returns true and reports how many
// were removed.
func (c *MRU[T]) RemoveFunc(fn func(T) bool) int {
	removed := 0
	for i := 0; i < c.n; {
		if fn(c.slots[i]) {
			c.removeAt(i)
			removed++
			continue
		}
		i++
	}
	return removed
}

// Items returns the filled slots, most recent first.
func (c *MRU[T]) Items() []T {
	out := make([]T, c.n)
	copy(out, c.slots[:c.n])
	return out
}

func (c *MRU[T]) indexOf(item T) int {
	for i := 0; i < c.n; i++ {
		if c.slots[i] == item {
			return i
		}
	}
	return -1
}

func (c *MRU[T]) removeAt(i int) {
	copy(c.slots[i:c.n-1], c.slots[i+1:c.n])
	c.n--
	var zero T
	c.slots[c.n] = zero
}
