// internal/entropy/entropy.go

// Package entropy provides a single OS-entropy-backed uint64, used to
// seed the default level generator's PRNG state when a caller configures
// neither an explicit seed nor a custom level function. Platform support
// is split the same way the teacher's pkg/pager splits its mmap backend:
// a unix-family implementation using golang.org/x/sys/unix, and a
// portable fallback everywhere else. See Seed in entropy_unix.go /
// entropy_other.go.
package entropy
