//go:build unix || darwin || linux || freebsd || openbsd || netbsd

// internal/entropy/entropy_unix.go
package entropy

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// Seed draws 8 bytes from the kernel CSPRNG via getrandom(2) and returns
// them as a uint64. Falls back to fallbackSeed (crypto/rand, then a
// timestamp) in the unlikely case the syscall is unavailable (e.g. a
// very old kernel).
func Seed() uint64 {
	var buf [8]byte
	if n, err := unix.Getrandom(buf[:], 0); err == nil && n == len(buf) {
		return binary.LittleEndian.Uint64(buf[:])
	}
	return fallbackSeed()
}
