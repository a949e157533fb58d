package skiplist

import "testing"

func newTestContainer(t *testing.T, capacity int) *Container[int, string] {
	t.Helper()
	c, err := New[int, string](Config[int, string]{
		Capacity: capacity,
		Compare:  intCmp,
		Seed:     42,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsMissingCompare(t *testing.T) {
	_, err := New[int, string](Config[int, string]{})
	if err != ErrMisuse {
		t.Fatalf("err = %v, want ErrMisuse", err)
	}
}

func TestNewRejectsTinyCapacity(t *testing.T) {
	_, err := New[int, string](Config[int, string]{Compare: intCmp, Capacity: 1})
	if err != ErrMisuse {
		t.Fatalf("err = %v, want ErrMisuse", err)
	}
}

func TestNewRejectsOutOfRangeMaxLevel(t *testing.T) {
	_, err := New[int, string](Config[int, string]{Compare: intCmp, MaxLevel: -1})
	if err != ErrMisuse {
		t.Fatalf("MaxLevel -1: err = %v, want ErrMisuse", err)
	}

	_, err = New[int, string](Config[int, string]{Compare: intCmp, MaxLevel: hardMaxLevel + 1})
	if err != ErrMisuse {
		t.Fatalf("MaxLevel %d: err = %v, want ErrMisuse", hardMaxLevel+1, err)
	}
}

func TestNewDefaultsCapacity(t *testing.T) {
	c, err := New[int, string](Config[int, string]{Compare: intCmp})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.capacity != defaultCapacity {
		t.Fatalf("capacity = %d, want %d", c.capacity, defaultCapacity)
	}
}

func TestSetGetMember(t *testing.T) {
	c := newTestContainer(t, 4)

	if _, err := c.Set(1, "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := c.Set(2, "two"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, ok := c.Get(1)
	if !ok || v != "one" {
		t.Fatalf("Get(1) = (%q, %v), want (one, true)", v, ok)
	}
	if !c.Member(2) {
		t.Fatal("Member(2) = false, want true")
	}
	if c.Member(3) {
		t.Fatal("Member(3) = true, want false")
	}
	if got := c.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
}

func TestSetReplacesExistingValue(t *testing.T) {
	c := newTestContainer(t, 4)
	outcome, err := c.Set(1, "one")
	if err != nil || outcome != Bound {
		t.Fatalf("Set = (%v, %v), want (Bound, nil)", outcome, err)
	}

	outcome, err = c.Set(1, "uno")
	if err != nil || outcome != Replaced {
		t.Fatalf("Set = (%v, %v), want (Replaced, nil)", outcome, err)
	}

	v, _ := c.Get(1)
	if v != "uno" {
		t.Fatalf("Get(1) = %q, want uno", v)
	}
	if got := c.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1 after overwrite", got)
	}
}

func TestCloseInvokesOnRemove(t *testing.T) {
	c := newTestContainer(t, 4)
	c.Set(1, "one")
	c.Set(2, "two")

	seen := map[int]string{}
	c.Close(func(k int, v string, _ any) { seen[k] = v })

	if len(seen) != 2 || seen[1] != "one" || seen[2] != "two" {
		t.Fatalf("seen = %v, want {1: one, 2: two}", seen)
	}
}

func TestSetReturnsLockedWhileCursorOpen(t *testing.T) {
	c := newTestContainer(t, 4)
	c.Set(1, "one")

	cur, ok := c.NewCursor()
	if !ok {
		t.Fatal("NewCursor() ok = false on non-empty container")
	}
	defer cur.Close()

	if _, err := c.Set(2, "two"); err != ErrLocked {
		t.Fatalf("Set while locked = %v, want ErrLocked", err)
	}
	if _, err := c.Forget(1); err != ErrLocked {
		t.Fatalf("Forget while locked = %v, want ErrLocked", err)
	}
}
