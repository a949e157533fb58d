//go:build !(unix || darwin || linux || freebsd || openbsd || netbsd)

// internal/entropy/entropy_other.go
package entropy

// Seed draws entropy from crypto/rand; there is no portable
// golang.org/x/sys/unix.Getrandom equivalent outside the unix family.
func Seed() uint64 {
	return fallbackSeed()
}
