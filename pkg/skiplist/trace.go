// pkg/skiplist/trace.go
package skiplist

import "log"

// Debug gates trace-level logging of structural mutations (splits,
// merges, unlinks). Off by default; the original library gated the
// same events behind a compile-time SKIPARRAY_LOG level.
var Debug = false

func trace(format string, args ...any) {
	if !Debug {
		return
	}
	log.Printf("skiplist: "+format, args...)
}
