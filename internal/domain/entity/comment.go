package entity

import (
	"time"
)

// Comment is a free-text note attached to a quote. Quotes are not modeled as
// rows; QuoteText is the opaque key. Username is a denormalized owner
// reference, compared by string equality on mutation.
type Comment struct {
	ID        int64
	QuoteText string
	Username  string
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
