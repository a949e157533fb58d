// pkg/skiplist/errors.go
package skiplist

import "errors"

var (
	// ErrLocked is returned by mutating operations when the container
	// has one or more live cursors. The container is unchanged.
	ErrLocked = errors.New("skiplist: container is locked by a live cursor")

	// ErrMisuse reports a caller contract violation: a nil comparator,
	// a bad configuration value, an out-of-order key handed to an
	// ascending-only Appender, or an incompatible set of containers
	// passed to NewFolder. The container (or builder) is unchanged.
	ErrMisuse = errors.New("skiplist: misuse")
)
