package stores

import (
	"time"
)

// Run is one finished enumeration.
type Run struct {
	ID          int64
	Composition string
	Word        string
	Total       uint64
	// Buckets maps an occurrence count to the number of arrangements
	// with that count. Empty buckets are not stored.
	Buckets   map[int]uint64
	Elapsed   time.Duration
	CreatedAt time.Time
}
