// internal/entropy/fallback.go
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// fallbackSeed is used on platforms without a direct getrandom binding,
// and as a last resort if the unix-family syscall path fails.
func fallbackSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err == nil {
		return binary.LittleEndian.Uint64(buf[:])
	}
	return uint64(time.Now().UnixNano())
}
