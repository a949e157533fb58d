package skiplist

import "testing"

func TestFilterKeepsMatching(t *testing.T) {
	c := newTestContainer(t, 4)
	for i := 0; i < 50; i++ {
		c.Set(i, "x")
	}

	even, err := Filter(c, func(k int, _ string, _ any) bool { return k%2 == 0 }, nil)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}

	if got, want := even.Count(), 25; got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
	for i := 0; i < 50; i += 2 {
		if !even.Member(i) {
			t.Fatalf("Member(%d) = false, want true", i)
		}
	}
	for i := 1; i < 50; i += 2 {
		if even.Member(i) {
			t.Fatalf("Member(%d) = true, want false", i)
		}
	}
	checkAscending(t, even)
}

func TestFilterEmptyResult(t *testing.T) {
	c := newTestContainer(t, 4)
	for i := 0; i < 10; i++ {
		c.Set(i, "x")
	}

	none, err := Filter(c, func(int, string, any) bool { return false }, nil)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if got := none.Count(); got != 0 {
		t.Fatalf("Count() = %d, want 0", got)
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	c := newTestContainer(t, 4)
	for i := 0; i < 20; i++ {
		c.Set(i, "x")
	}

	if _, err := Filter(c, func(k int, _ string, _ any) bool { return k < 10 }, nil); err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if got := c.Count(); got != 20 {
		t.Fatalf("source Count() = %d, want 20 (unchanged)", got)
	}
}
