// pkg/skiplist/fold.go
package skiplist

// FoldFunc receives each pair a Folder visits, in the fold's direction.
type FoldFunc[K, V any] func(key K, value V, udata any)

// MergeFunc resolves a tie: two or more source containers bound an
// equal key during a multi-source Fold. It returns the index, within
// keys/values, of the key that should be reported, and the value to
// report alongside it (which may be one of values, or a freshly
// combined one).
type MergeFunc[K, V any] func(keys []K, values []V, udata any) (choice int, merged V)

type foldSlotState int

const (
	slotNone foldSlotState = iota
	slotAvailableLT
	slotAvailableEQ
)

// Folder drives a left-to-right or right-to-left merge over one or more
// Containers, calling back once per reported key in order. Each
// non-empty source Container is locked by the Folder's Cursor on it
// until that source is drained or the fold is halted.
type Folder[K, V any] struct {
	cursors   []*Cursor[K, V]
	live      int
	dir       Direction
	cmp       CompareFunc[K]
	udata     any
	cb        FoldFunc[K, V]
	merge     MergeFunc[K, V]
	useValues bool

	pairs  []Pair[K, V]
	states []foldSlotState

	ids    []int // source indices ordered by key; live window is ids[offset:offset+avail]
	offset int
	avail  int
}

// Fold walks c's bindings once, in dir order, calling cb for each.
func Fold[K, V any](c *Container[K, V], dir Direction, cb FoldFunc[K, V]) error {
	f, err := NewFolder([]*Container[K, V]{c}, dir, cb, nil)
	if err != nil {
		return err
	}
	f.Run()
	return nil
}

// NewFolder starts a merge fold over one or more Containers sharing the
// same Compare and value mode. merge is required when more than one
// Container is given; it resolves ties on equal keys across sources.
func NewFolder[K, V any](containers []*Container[K, V], dir Direction, cb FoldFunc[K, V], merge MergeFunc[K, V]) (*Folder[K, V], error) {
	if len(containers) == 0 || cb == nil {
		return nil, ErrMisuse
	}
	if len(containers) > 1 && merge == nil {
		return nil, ErrMisuse
	}

	first := containers[0]
	for _, c := range containers {
		if c.usesValues() != first.usesValues() {
			return nil, ErrMisuse
		}
	}

	n := len(containers)
	f := &Folder[K, V]{
		cursors:   make([]*Cursor[K, V], n),
		dir:       dir,
		cmp:       first.cmp,
		udata:     first.udata,
		cb:        cb,
		merge:     merge,
		useValues: first.usesValues(),
		pairs:     make([]Pair[K, V], n),
		states:    make([]foldSlotState, n),
		ids:       make([]int, n),
	}

	for i, c := range containers {
		cur, ok := c.NewCursor()
		if !ok {
			continue // immediately empty; cursors[i] stays nil
		}
		if dir == Descending {
			cur.SeekEndpoint(Last)
		}
		f.cursors[i] = cur
		f.live++
	}

	return f, nil
}

// Halt stops the fold early, releasing every cursor it opened. Next
// must not be called afterward.
func (f *Folder[K, V]) Halt() {
	for _, cur := range f.cursors {
		if cur != nil {
			cur.Close()
		}
	}
}

// Run drives the fold to completion, calling cb for every remaining
// pair.
func (f *Folder[K, V]) Run() {
	for f.Next() {
	}
}

// Next advances the fold by one reported key, invoking cb, and returns
// true. When no pairs are left it invokes nothing and returns false,
// and the fold has then released all of its cursors.
func (f *Folder[K, V]) Next() bool {
	if f.live == 0 && f.avail == 0 {
		f.Halt()
		return false
	}

	if f.live > 0 {
		f.stepActiveCursors()
	}
	f.callWithNext()
	return true
}

func (f *Folder[K, V]) stepActiveCursors() {
	for i, cur := range f.cursors {
		if cur == nil {
			continue
		}
		if f.states[i] != slotNone {
			continue
		}

		key, value := cur.Get()
		f.pairs[i] = Pair[K, V]{Key: key, Value: value}
		f.insertID(i)

		var more bool
		if f.dir == Descending {
			more = cur.Prev()
		} else {
			more = cur.Next()
		}
		if !more {
			cur.Close()
			f.cursors[i] = nil
			f.live--
		}
	}
}

// insertID places source index i into the ordered id window, keyed by
// f.pairs[i].Key.
func (f *Folder[K, V]) insertID(i int) {
	if f.offset > 0 {
		copy(f.ids[0:f.avail], f.ids[f.offset:f.offset+f.avail])
		f.offset = 0
	}

	key := f.pairs[i].Key
	for ci := 0; ci < f.avail; ci++ {
		other := f.pairs[f.ids[ci]].Key
		res := f.cmp(key, other, f.udata)
		if res <= 0 {
			copy(f.ids[ci+1:f.avail+1], f.ids[ci:f.avail])
			f.ids[ci] = i
			if res == 0 {
				f.states[i] = slotAvailableEQ
				// The entry just displaced (and any run of entries
				// tied with it) now ties with i too; a stale LT there
				// would let callWithNext emit it alone, ahead of the
				// merge this key is supposed to go through.
				for cj := ci + 1; cj < f.avail+1; cj++ {
					id := f.ids[cj]
					if f.cmp(key, f.pairs[id].Key, f.udata) != 0 {
						break
					}
					f.states[id] = slotAvailableEQ
				}
			} else {
				f.states[i] = slotAvailableLT
			}
			f.avail++
			return
		}
	}

	f.ids[f.avail] = i
	f.states[i] = slotAvailableLT
	f.avail++
}

func (f *Folder[K, V]) callWithNext() {
	base := f.offset
	first := f.ids[base]

	if f.states[first] == slotAvailableLT {
		p := f.pairs[first]
		f.cb(p.Key, p.Value, f.udata)
		f.avail--
		f.offset++
		f.states[first] = slotNone
		return
	}

	used := 0
	for i := 0; i < f.avail; i++ {
		id := f.ids[base+i]
		if f.states[id] != slotAvailableEQ {
			break
		}
		used++
	}

	keys := make([]K, used)
	values := make([]V, used)
	for i := 0; i < used; i++ {
		id := f.ids[base+i]
		keys[i] = f.pairs[id].Key
		if f.useValues {
			values[i] = f.pairs[id].Value
		}
	}

	choice, merged := f.merge(keys, values, f.udata)
	f.cb(keys[choice], merged, f.udata)

	f.avail -= used
	f.offset += used
	for i := 0; i < used; i++ {
		id := f.ids[base+i]
		f.states[id] = slotNone
	}
}
