// pkg/skiplist/delete.go
package skiplist

// Forget removes key's binding, if any, and reports whether one existed.
func (c *Container[K, V]) Forget(key K) (bool, error) {
	_, found, err := c.ForgetWithPair(key)
	return found, err
}

// ForgetWithPair removes key's binding, if any, also returning the
// removed key and value.
//
// Returns ErrLocked, without making any change, if a cursor is live.
func (c *Container[K, V]) ForgetWithPair(key K) (Pair[K, V], bool, error) {
	if c.locked() {
		return Pair[K, V]{}, false, ErrLocked
	}

	n, idx, found := search(c, key)
	if !found {
		return Pair[K, V]{}, false, nil
	}

	var forgotten Pair[K, V]
	forgotten.Key = n.keys[n.offset+idx]
	if c.usesValues() {
		forgotten.Value = n.values[n.offset+idx]
	}

	switch {
	case idx == 0:
		n.offset++
		if n.offset == n.capacity() {
			n.offset = n.capacity() / 2
		}
		n.count--
	case idx == n.count-1:
		n.count--
	default:
		toMove := n.count - idx - 1
		n.shiftPairs(n.offset+idx, n.offset+idx+1, toMove)
		n.count--
	}

	required := c.capacity / 2
	if n.count < required {
		c.shiftOrMerge(n)
	}

	return forgotten, true, nil
}

// shiftOrMerge restores n's minimum-load invariant after a removal left
// it under-filled, by stealing from or merging with its level-0
// neighbor.
func (c *Container[K, V]) shiftOrMerge(n *Leaf[K, V]) {
	if n == c.heads[0] && n.fwd[0] == nil {
		// The root leaf is allowed to be empty; there is nothing to
		// merge it with.
		return
	}

	required := c.capacity / 2
	next := n.fwd[0]

	if next == nil {
		prev := n.back
		if prev.count+n.count <= c.capacity {
			prev.shiftPairs(0, prev.offset, prev.count)
			prev.offset = 0
			movePairs(prev, n, prev.count, n.offset, n.count)
			prev.count += n.count
			if n.fwd[0] != nil {
				n.fwd[0].back = prev
			}
			trace("merging tail leaf %p into prev %p", n, prev)
			c.unlinkLeaf(n)
		}
		// else: contents won't fit in prev, leave alone this time.
		return
	}

	if next.count+n.count <= c.capacity {
		if n.offset > 0 {
			n.shiftPairs(0, n.offset, n.count)
			n.offset = 0
		}
		movePairs(n, next, n.count, next.offset, next.count)
		n.count += next.count
		c.unlinkLeaf(next)
		return
	}

	toMove := next.count - required
	if n.offset > 0 {
		n.shiftPairs(0, n.offset, n.count)
		n.offset = 0
	}
	movePairs(n, next, n.count, next.offset, toMove)
	next.count -= toMove
	next.offset += toMove
	n.count += toMove
}

// unlinkLeaf removes the now-empty leaf n from every level it
// participates in, then frees it.
func (c *Container[K, V]) unlinkLeaf(n *Leaf[K, V]) {
	for level := c.height - 1; level >= 0; level-- {
		if c.heads[level] == n {
			c.heads[level] = n.fwd[level]
		}
	}
	for c.height > 1 && c.heads[c.height-1] == nil {
		c.height--
	}

	// n is empty, so locate it in the remaining levels by comparing
	// against its nearest live neighbor's boundary key instead.
	nearest := n.back
	var nearestKey K
	cmpCondition := 1 // res <= 0
	if nearest != nil {
		nearestKey = nearest.keys[nearest.offset+nearest.count-1]
	} else {
		nearest = n.fwd[0]
		nearestKey = nearest.keys[nearest.offset]
		cmpCondition = 0 // res < 0
	}

	level := c.height - 1
	var cur *Leaf[K, V]
	for level >= 0 {
		if cur == nil {
			head := c.heads[level]
			if head != nil {
				res := c.cmp(head.lastKey(), nearestKey, c.udata)
				if res < cmpCondition {
					cur = head
				} else {
					level--
					continue
				}
			} else {
				level--
				continue
			}
		}

		switch {
		case cur.fwd[level] == nil:
			level--
		case cur.fwd[level] == n:
			nfwd := n.fwd[level]
			cur.fwd[level] = nfwd
			if nfwd != nil && level == 0 {
				nfwd.back = cur
			}
			level--
		default:
			next := cur.fwd[level]
			res := c.cmp(next.lastKey(), nearestKey, c.udata)
			if res < cmpCondition {
				cur = next
			} else {
				level--
			}
		}
	}

	c.alloc.FreeLeaf(n)
}
