// pkg/skiplist/entropy.go
package skiplist

import "skiplist/internal/entropy"

func seedFromEntropy() uint64 {
	return entropy.Seed()
}
