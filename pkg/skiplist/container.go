// pkg/skiplist/container.go
package skiplist

import "container/list"

// Container is an ordered key/value container implemented as an
// unrolled skiplist: a chain of leaves, each holding many sorted pairs,
// indexed by a skiplist over the leaves themselves. See the package doc
// for the high-level picture.
//
// A zero-value Container is not usable; build one with New.
type Container[K, V any] struct {
	capacity  int
	maxLevel  int
	valueMode ValueMode
	cmp       CompareFunc[K]
	alloc     Allocator[K, V]
	level     LevelFunc
	udata     any

	heads     []*Leaf[K, V] // heads[L]: first leaf with height > L, or nil
	height    int           // smallest H such that heads[h] == nil for h >= H
	prngState uint64

	cursors *list.List // of *Cursor[K, V]; non-empty => locked
}

// New builds an empty Container. Compare is required; all other Config
// fields are optional and take documented defaults.
func New[K, V any](cfg Config[K, V]) (*Container[K, V], error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	withValues := cfg.ValueMode == WithValues
	prngState, rootHeight := cfg.Level(cfg.Seed, cfg.UserData)
	rootHeight++ // level() returns an exponent k; leaf height is k+1
	if rootHeight > cfg.MaxLevel {
		rootHeight = cfg.MaxLevel
	}
	if rootHeight < 1 {
		rootHeight = 1
	}

	root, err := cfg.Allocator.NewLeaf(rootHeight, cfg.Capacity, withValues)
	if err != nil {
		return nil, err
	}

	c := &Container[K, V]{
		capacity:  cfg.Capacity,
		maxLevel:  cfg.MaxLevel,
		valueMode: cfg.ValueMode,
		cmp:       cfg.Compare,
		alloc:     cfg.Allocator,
		level:     cfg.Level,
		udata:     cfg.UserData,
		heads:     make([]*Leaf[K, V], cfg.MaxLevel),
		height:    rootHeight,
		prngState: prngState,
		cursors:   list.New(),
	}
	for i := 0; i < rootHeight; i++ {
		c.heads[i] = root
	}
	return c, nil
}

func (c *Container[K, V]) usesValues() bool { return c.valueMode == WithValues }

func (c *Container[K, V]) locked() bool { return c.cursors.Len() > 0 }

func (c *Container[K, V]) nextLevel() int {
	state, k := c.level(c.prngState, c.udata)
	c.prngState = state
	height := k + 1
	if height > c.maxLevel {
		height = c.maxLevel
	}
	if height < 1 {
		height = 1
	}
	return height
}

// Close releases every leaf in the container. If onRemove is non-nil,
// it is called once per remaining binding with its key and value (and
// UserData), mirroring the original library's skiparray_free callback;
// pass nil to simply drop everything. Any live cursors are invalidated.
func (c *Container[K, V]) Close(onRemove func(key K, value V, udata any)) {
	n := c.heads[0]
	for n != nil {
		next := n.fwd[0]
		if onRemove != nil {
			for i := 0; i < n.count; i++ {
				var v V
				if c.usesValues() {
					v = n.values[n.offset+i]
				}
				onRemove(n.keys[n.offset+i], v, c.udata)
			}
		}
		c.alloc.FreeLeaf(n)
		n = next
	}
	for e := c.cursors.Front(); e != nil; e = e.Next() {
		e.Value.(*Cursor[K, V]).closed = true
	}
	c.cursors.Init()
	c.heads = nil
}

// Count walks the level-0 chain and sums leaf counts. O(number of
// leaves).
func (c *Container[K, V]) Count() int {
	total := 0
	for n := c.heads[0]; n != nil; n = n.fwd[0] {
		total += n.count
	}
	return total
}

// Get returns the value bound to key, if any.
func (c *Container[K, V]) Get(key K) (V, bool) {
	_, v, ok := c.GetPair(key)
	return v, ok
}

// GetPair is like Get, but also returns the key actually stored in the
// binding -- useful when Compare can consider two non-identical keys
// equal.
func (c *Container[K, V]) GetPair(key K) (K, V, bool) {
	n, idx, found := search(c, key)
	if !found {
		var zk K
		var zv V
		return zk, zv, false
	}
	var v V
	if c.usesValues() {
		v = n.values[n.offset+idx]
	}
	return n.keys[n.offset+idx], v, true
}

// Member reports whether key has a binding.
func (c *Container[K, V]) Member(key K) bool {
	_, _, found := search(c, key)
	return found
}
