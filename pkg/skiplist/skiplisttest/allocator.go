// Package skiplisttest provides test-only support for exercising
// skiplist.Container's out-of-memory paths, which Go's own allocator
// will not produce on demand.
package skiplisttest

import (
	"errors"

	"skiplist/pkg/skiplist"
)

// ErrOutOfLeaves is returned once a BoundedAllocator has handed out its
// configured number of leaves.
var ErrOutOfLeaves = errors.New("skiplisttest: leaf budget exhausted")

// BoundedAllocator implements skiplist.Allocator[K, V], failing once a
// fixed number of leaves have been allocated. Freed leaves are not
// returned to the budget, matching the underlying library's own
// allocator hook, which never recycles.
type BoundedAllocator[K, V any] struct {
	Remaining int
	Freed     int
}

// NewBoundedAllocator returns an allocator good for exactly n leaves.
func NewBoundedAllocator[K, V any](n int) *BoundedAllocator[K, V] {
	return &BoundedAllocator[K, V]{Remaining: n}
}

func (b *BoundedAllocator[K, V]) NewLeaf(height, capacity int, withValues bool) (*skiplist.Leaf[K, V], error) {
	if b.Remaining <= 0 {
		return nil, ErrOutOfLeaves
	}
	b.Remaining--
	return skiplist.NewLeaf[K, V](height, capacity, withValues), nil
}

func (b *BoundedAllocator[K, V]) FreeLeaf(*skiplist.Leaf[K, V]) {
	b.Freed++
}
