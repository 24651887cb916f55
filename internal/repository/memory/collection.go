package memory

import "sync"

// collection is the keyed storage shared by every in-memory repository:
// a map guarded by a mutex plus a monotonically increasing id counter.
// Ids start at 1 and are never reused, even after deletion.
//
// Updates merge against the current stored value, not a snapshot taken at
// request start, so two concurrent partial updates to the same record race
// with last-write-wins semantics. Accepted for the single-user scale.
type collection[T any] struct {
	mu     sync.RWMutex
	items  map[int64]T
	nextID int64
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{
		items:  make(map[int64]T),
		nextID: 1,
	}
}

// insert assigns the next id and stores the record built from it.
func (c *collection[T]) insert(build func(id int64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	item := build(id)
	c.items[id] = item
	return item
}

func (c *collection[T]) get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// update applies merge to the stored record and writes the result back.
// Returns false when the id does not exist; the store is left unchanged.
func (c *collection[T]) update(id int64, merge func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	updated := merge(existing)
	c.items[id] = updated
	return updated, true
}

// delete reports whether a record was actually removed, so a second delete
// of the same id returns false.
func (c *collection[T]) delete(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[id]
	if ok {
		delete(c.items, id)
	}
	return ok
}

// filter is a linear scan; O(n) per call, acceptable at single-profile
// scale. Result order is not guaranteed.
func (c *collection[T]) filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}
