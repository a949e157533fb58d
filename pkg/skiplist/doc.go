// pkg/skiplist/doc.go

// Package skiplist implements an ordered key/value container backed by
// an unrolled skiplist: a skiplist whose nodes ("leaves") each hold many
// sorted key/value pairs in a fixed-capacity, sliding-window buffer,
// rather than one pair per node. The skiplist's forward pointers index
// leaves, not individual entries, which keeps the express-lane structure
// small relative to the data and gives good cache locality on leaf scans.
//
// A Container can also act as an ordered set by configuring ValueMode to
// KeysOnly, which skips allocating the value slot array entirely.
//
// The container is not safe for concurrent use. It is, however, safe to
// hold many Cursors open on one Container at once (readers), at the
// price of the Container refusing mutation for as long as any Cursor is
// open (see Cursor).
package skiplist
