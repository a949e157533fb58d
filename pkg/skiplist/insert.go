// pkg/skiplist/insert.go
package skiplist

// Set binds key to value, replacing any existing key and value. It is a
// thin wrapper over SetWithPrevious (replaceKey=true, no previous
// binding captured), matching the original library's own set/
// set_with_pair split.
func (c *Container[K, V]) Set(key K, value V) (SetOutcome, error) {
	_, _, outcome, err := c.SetWithPrevious(key, value, true)
	return outcome, err
}

// SetWithPrevious binds key to value. If a binding for an equal key
// already exists, its value is overwritten; replaceKey selects whether
// the stored key is also overwritten (useful when Compare can treat two
// non-identical keys as equal). hadPrev reports whether a previous
// binding existed, in which case prev holds it.
//
// Returns ErrLocked, without making any change, if a cursor is live.
func (c *Container[K, V]) SetWithPrevious(key K, value V, replaceKey bool) (prev Pair[K, V], hadPrev bool, outcome SetOutcome, err error) {
	if c.locked() {
		return Pair[K, V]{}, false, 0, ErrLocked
	}

	n, idx, found := search(c, key)

	if found {
		prev.Key = n.keys[n.offset+idx]
		if c.usesValues() {
			prev.Value = n.values[n.offset+idx]
			n.values[n.offset+idx] = value
		}
		if replaceKey {
			n.keys[n.offset+idx] = key
		}
		return prev, true, Replaced, nil
	}

	if n.full() {
		n, idx, err = c.splitForInsert(n, idx)
		if err != nil {
			return Pair[K, V]{}, false, 0, err
		}
	}

	n.prepareForInsert(idx)
	n.keys[n.offset+idx] = key
	if c.usesValues() {
		n.values[n.offset+idx] = value
	}
	n.count++
	return Pair[K, V]{}, false, Bound, nil
}

// splitForInsert splits a full leaf n, returning the leaf and
// window-relative index the pending insert at the original idx should
// now target.
func (c *Container[K, V]) splitForInsert(n *Leaf[K, V], idx int) (*Leaf[K, V], int, error) {
	height := c.nextLevel()
	next, err := c.alloc.NewLeaf(height, c.capacity, c.usesValues())
	if err != nil {
		return nil, 0, err
	}

	// Move the trailing half (at least one pair) to the new leaf,
	// rounding down so the original leaf keeps the larger half.
	toMove := n.count / 2
	if toMove == 0 {
		toMove = 1
	}
	next.offset = 0
	movePairs(next, n, 0, n.offset+n.count-toMove, toMove)
	n.count -= toMove
	next.count = toMove
	next.back = n
	trace("split leaf %p (height %d) to %p (height %d), %d pairs moved", n, n.height, next, next.height, toMove)

	if n.fwd[0] != nil {
		n.fwd[0].back = next
	}

	if next.height > n.height {
		var prev, cur *Leaf[K, V]
		for level := next.height - 1; level >= n.height; level-- {
			if level >= c.height {
				continue
			}
			if cur == nil {
				cur = c.heads[level]
			}
			for {
				res := c.cmp(next.firstKey(), cur.lastKey(), c.udata)
				if res < 0 { // overshot: next belongs before cur
					if prev == nil {
						next.fwd[level] = c.heads[level]
						c.heads[level] = next
					}
					cur = prev
					break
				}
				// res > 0: advance past cur
				prev = cur
				if cur.fwd[level] == nil {
					cur.fwd[level] = next
					break
				}
				cur = cur.fwd[level]
			}

			if prev != nil {
				if prev.fwd[level] != next {
					next.fwd[level] = prev.fwd[level]
				}
				prev.fwd[level] = next
			}
		}
	}

	for next.height > c.height {
		c.heads[c.height] = next
		c.height++
	}

	commonHeight := n.height
	if next.height < commonHeight {
		commonHeight = next.height
	}
	for i := 0; i < commonHeight; i++ {
		next.fwd[i] = n.fwd[i]
		n.fwd[i] = next
	}

	if idx > n.count {
		idx -= n.count
		n = next
	}
	return n, idx, nil
}
