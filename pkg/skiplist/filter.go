// pkg/skiplist/filter.go
package skiplist

// FilterFunc reports whether a binding should be kept by Filter.
type FilterFunc[K, V any] func(key K, value V, udata any) bool

// Filter builds a new Container holding exactly the bindings of c for
// which fn returns true, preserving order. It shares c's capacity, max
// level, value mode, Compare, Allocator and Level.
func Filter[K, V any](c *Container[K, V], fn FilterFunc[K, V], udata any) (*Container[K, V], error) {
	cfg := Config[K, V]{
		Capacity:  c.capacity,
		MaxLevel:  c.maxLevel,
		ValueMode: c.valueMode,
		Compare:   c.cmp,
		Allocator: c.alloc,
		Level:     c.level,
		Seed:      c.prngState,
		UserData:  udata,
	}

	a, err := NewAppender(cfg, false)
	if err != nil {
		return nil, err
	}

	var appendErr error
	Fold(c, Ascending, func(key K, value V, _ any) {
		if appendErr != nil {
			return
		}
		if fn(key, value, udata) {
			appendErr = a.Append(key, value)
		}
	})
	if appendErr != nil {
		return nil, appendErr
	}

	return a.Finish(), nil
}
