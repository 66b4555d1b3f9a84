package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is a time-bounded capability token granting read access to one
// video's bytes. The ID doubles as the externally exposed token, so it must
// come from a crypto-random source. ExpiryTime is stored in UTC; a link is
// live while now <= ExpiryTime.
type Link struct {
	ID         uuid.UUID
	VideoID    uuid.UUID
	ExpiryTime time.Time
}

// Live reports whether the link grants access at the given instant.
// Timestamps that lost their zone on the way through storage are treated
// as UTC before comparing.
func (l Link) Live(now time.Time) bool {
	return !now.UTC().After(l.ExpiryTime.UTC())
}
