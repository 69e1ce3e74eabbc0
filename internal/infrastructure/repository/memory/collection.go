package memory

// collection is an insertion-ordered list of records keyed by a string id.
// It performs no locking; Store serializes access.
type collection[T any] struct {
	items []T
	key   func(T) string
}

func newCollection[T any](key func(T) string, items []T) collection[T] {
	out := make([]T, len(items))
	copy(out, items)
	return collection[T]{items: out, key: key}
}

func (c *collection[T]) all() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *collection[T]) indexOf(id string) int {
	for idx, item := range c.items {
		if c.key(item) == id {
			return idx
		}
	}
	return -1
}

func (c *collection[T]) find(id string) (T, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return c.items[idx], true
}

func (c *collection[T]) add(item T) {
	c.items = append(c.items, item)
}

func (c *collection[T]) update(id string, mutate func(*T)) (T, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	item := c.items[idx]
	mutate(&item)
	c.items[idx] = item
	return item, true
}

func (c *collection[T]) remove(id string) (T, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	item := c.items[idx]
	c.items = append(c.items[:idx:idx], c.items[idx+1:]...)
	return item, true
}

func (c *collection[T]) clone() collection[T] {
	return newCollection(c.key, c.items)
}
