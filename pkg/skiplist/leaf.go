// pkg/skiplist/leaf.go
package skiplist

// Leaf is one node of the unrolled skiplist: a fixed-capacity buffer of
// key (and optionally value) slots, with a movable window [offset,
// offset+count) holding the live entries. New leaves start with offset
// at capacity/2 so that front and back insertions are O(1)-amortized
// without an immediate shift.
type Leaf[K, V any] struct {
	height int // tower height, fixed at allocation, 1 <= height <= maxLevel
	offset int
	count  int

	keys   []K
	values []V // nil when the container is in KeysOnly mode

	fwd  []*Leaf[K, V] // one forward pointer per level, len == height
	back *Leaf[K, V]   // level-0 back pointer, nil for the first leaf
}

func NewLeaf[K, V any](height, capacity int, withValues bool) *Leaf[K, V] {
	l := &Leaf[K, V]{
		height: height,
		offset: capacity / 2,
		keys:   make([]K, capacity),
		fwd:    make([]*Leaf[K, V], height),
	}
	if withValues {
		l.values = make([]V, capacity)
	}
	return l
}

func (l *Leaf[K, V]) capacity() int { return len(l.keys) }

func (l *Leaf[K, V]) empty() bool { return l.count == 0 }

func (l *Leaf[K, V]) full() bool { return l.count == l.capacity() }

// firstKey and lastKey read the keys at the window endpoints.
// Callers must ensure count > 0.
func (l *Leaf[K, V]) firstKey() K { return l.keys[l.offset] }

func (l *Leaf[K, V]) lastKey() K { return l.keys[l.offset+l.count-1] }

// searchWithin does a lower-bound binary search over the live window
// keys[offset : offset+count). It returns the position within the
// window (0 <= idx <= count) at which key belongs, and whether an exact
// match was found at that position.
func searchWithin[K, V any](l *Leaf[K, V], key K, cmp CompareFunc[K], udata any) (idx int, found bool) {
	lo, hi := 0, l.count
	for lo < hi {
		mid := (lo + hi) / 2
		res := cmp(key, l.keys[l.offset+mid], udata)
		switch {
		case res < 0:
			hi = mid
		case res > 0:
			lo = mid + 1
		default:
			return mid, true
		}
	}
	return lo, false
}

// prepareForInsert opens up a slot at window-relative index idx, ready
// to be written by the caller. Must only be called when count < capacity.
func (l *Leaf[K, V]) prepareForInsert(idx int) {
	capacity := l.capacity()
	switch {
	case idx == 0:
		if l.offset > 0 {
			l.offset--
		} else {
			l.shiftPairs(l.offset+1, l.offset, l.count)
		}
	case idx < l.count:
		if l.offset > 0 {
			l.shiftPairs(l.offset-1, l.offset, idx+1)
			l.offset--
		} else {
			l.shiftPairs(idx+1, idx, l.count-idx)
		}
	default: // idx == l.count, inserting at the tail
		if l.offset+l.count == capacity {
			l.shiftPairs(0, l.offset, l.count)
			l.offset = 0
		}
		// else: no-op, there is room after the window already
	}
}

// shiftPairs reindexes count live keys/values within this leaf's own
// backing arrays, from fromPos to toPos (may overlap).
func (l *Leaf[K, V]) shiftPairs(toPos, fromPos, count int) {
	copy(l.keys[toPos:toPos+count], l.keys[fromPos:fromPos+count])
	if l.values != nil {
		copy(l.values[toPos:toPos+count], l.values[fromPos:fromPos+count])
	}
}

// movePairs copies count live keys/values from "from" into "to", a
// different leaf, starting at the given absolute slot positions in each
// leaf's backing arrays.
func movePairs[K, V any](to, from *Leaf[K, V], toPos, fromPos, count int) {
	copy(to.keys[toPos:toPos+count], from.keys[fromPos:fromPos+count])
	if to.values != nil {
		copy(to.values[toPos:toPos+count], from.values[fromPos:fromPos+count])
	}
}
