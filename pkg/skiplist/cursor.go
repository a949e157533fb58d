// pkg/skiplist/cursor.go
package skiplist

import "container/list"

// Cursor walks a Container's bindings in key order. While any cursor on
// a Container is open, every mutating method on that Container returns
// ErrLocked: the original library's iterators pin the node they sit on,
// and allowing a concurrent split or merge to move pairs out from under
// them would invalidate that position silently.
type Cursor[K, V any] struct {
	c      *Container[K, V]
	elem   *list.Element // this cursor's entry in c.cursors
	n      *Leaf[K, V]
	index  int
	closed bool
}

// NewCursor opens a cursor positioned at the first binding. ok is false,
// with a nil Cursor, if the container is empty.
func (c *Container[K, V]) NewCursor() (*Cursor[K, V], bool) {
	head := c.heads[0]
	if head.fwd[0] == nil && head.count == 0 {
		return nil, false
	}
	cur := &Cursor[K, V]{c: c, n: head, index: 0}
	cur.elem = c.cursors.PushFront(cur)
	return cur, true
}

// Close releases the cursor. Closing an already-closed cursor is a
// no-op.
func (cur *Cursor[K, V]) Close() {
	if cur.closed {
		return
	}
	cur.closed = true
	cur.c.cursors.Remove(cur.elem)
}

// SeekEndpoint repositions the cursor at the container's first or last
// binding.
func (cur *Cursor[K, V]) SeekEndpoint(end Endpoint) {
	switch end {
	case First:
		cur.n = cur.c.heads[0]
		cur.index = 0
	case Last:
		cur.n = cur.c.lastLeaf()
		cur.index = cur.n.count - 1
	}
}

// Seek repositions the cursor at key, or at the next binding greater
// than key if key itself is absent.
func (cur *Cursor[K, V]) Seek(key K) SeekResult {
	c := cur.c
	n, idx, found := search(c, key)

	if found {
		cur.n, cur.index = n, idx
		return SeekFound
	}

	if idx == 0 && n.back == nil {
		return SeekBeforeFirst
	}

	if idx == n.count {
		next := n.fwd[0]
		if next == nil {
			return SeekAfterLast
		}
		n, idx = next, 0
	}

	cur.n, cur.index = n, idx
	return SeekNotFound
}

// Next advances the cursor by one binding, reporting whether it is
// still positioned on a valid binding.
func (cur *Cursor[K, V]) Next() bool {
	cur.index++
	if cur.index == cur.n.count {
		if cur.n.fwd[0] == nil {
			return false
		}
		cur.n = cur.n.fwd[0]
		cur.index = 0
	}
	return true
}

// Prev steps the cursor back by one binding, reporting whether it is
// still positioned on a valid binding.
func (cur *Cursor[K, V]) Prev() bool {
	if cur.index == 0 {
		if cur.n.back == nil {
			return false
		}
		cur.n = cur.n.back
		cur.index = cur.n.count - 1
		return true
	}
	cur.index--
	return true
}

// Get returns the binding at the cursor's current position.
func (cur *Cursor[K, V]) Get() (K, V) {
	n := cur.n
	idx := n.offset + cur.index
	var v V
	if cur.c.usesValues() {
		v = n.values[idx]
	}
	return n.keys[idx], v
}
