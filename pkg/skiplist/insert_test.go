package skiplist

import (
	"math/rand"
	"testing"
)

func TestSetForcesSplitsAndStaysOrdered(t *testing.T) {
	c := newTestContainer(t, 4)

	const n = 500
	for i := 0; i < n; i++ {
		if _, err := c.Set(i, "x"); err != nil {
			t.Fatalf("Set(%d): %v", i, err)
		}
	}

	if got := c.Count(); got != n {
		t.Fatalf("Count() = %d, want %d", got, n)
	}

	checkAscending(t, c)

	for i := 0; i < n; i++ {
		if !c.Member(i) {
			t.Fatalf("Member(%d) = false after bulk insert", i)
		}
	}
}

func TestSetOutOfOrderStaysOrdered(t *testing.T) {
	c := newTestContainer(t, 4)

	keys := rand.New(rand.NewSource(7)).Perm(300)
	for _, k := range keys {
		if _, err := c.Set(k, "x"); err != nil {
			t.Fatalf("Set(%d): %v", k, err)
		}
	}

	if got := c.Count(); got != 300 {
		t.Fatalf("Count() = %d, want 300", got)
	}
	checkAscending(t, c)
}

// checkAscending walks the level-0 chain and verifies strictly
// ascending keys across leaf boundaries, and that every forward/back
// pointer is mutually consistent.
func checkAscending[V any](t *testing.T, c *Container[int, V]) {
	t.Helper()

	var prevKey int
	havePrev := false
	var prevLeaf *Leaf[int, V]

	for n := c.heads[0]; n != nil; n = n.fwd[0] {
		if n.back != prevLeaf {
			t.Fatalf("leaf %p back = %p, want %p", n, n.back, prevLeaf)
		}
		for i := 0; i < n.count; i++ {
			k := n.keys[n.offset+i]
			if havePrev && k <= prevKey {
				t.Fatalf("keys out of order: %d after %d", k, prevKey)
			}
			prevKey, havePrev = k, true
		}
		prevLeaf = n
	}
}

func TestSetAtHigherLevelsSplicesCorrectly(t *testing.T) {
	c := newTestContainer(t, 4)
	for i := 0; i < 200; i++ {
		c.Set(i, "x")
	}

	// Every forward pointer at every level must point to a leaf whose
	// first key is greater than the current leaf's last key.
	for level := 0; level < c.height; level++ {
		for n := c.heads[level]; n != nil; n = n.fwd[level] {
			if n.count == 0 {
				continue
			}
			if next := n.fwd[level]; next != nil && next.count > 0 {
				if next.firstKey() <= n.lastKey() {
					t.Fatalf("level %d: leaf last %d >= next first %d", level, n.lastKey(), next.firstKey())
				}
			}
		}
	}
}
