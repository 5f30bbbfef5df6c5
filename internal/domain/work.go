package domain

import "time"

// Work is one external work document as returned by the catalog API.
// ID and UpdatedDate are lifted out of the payload; Fields carries the
// full payload with the abstract already reconstructed to plain text.
type Work struct {
	ID          string
	UpdatedDate string
	Fields      map[string]any
}

// WorksPage is one page of catalog results plus the total match count
// reported by the API.
type WorksPage struct {
	Works []Work
	Total int
}

// HarvestedRecord wraps a stored work with its pipeline metadata.
// Version starts at 0 on first insert and grows by exactly 1 per
// accepted update.
type HarvestedRecord struct {
	ID         int64
	Work       Work
	CreatedAt  time.Time
	ModifiedAt time.Time
	Version    int
}
