// Package product holds the read-only view of catalog products the trade
// core consumes. The catalog service owns the records; this side never
// mutates them beyond the mark-unavailable signal emitted on completion.
package product

import (
	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusReserved Status = "reserved"
	StatusSold     Status = "sold"
	StatusDeleted  Status = "deleted"
)

// Snapshot is the slice of a catalog product the trade core needs:
// identity, ownership and whether the owner accepts trade offers.
type Snapshot struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	Title              string
	AcceptsTradeOffers bool
	Status             Status
}

func (s *Snapshot) IsOwnedBy(userID uuid.UUID) bool {
	return s.OwnerID == userID
}

// IsAvailable reports whether the product can still change hands. The
// accepts-offers flag is a preference of the requested side only; an offered
// product just has to be active.
func (s *Snapshot) IsAvailable() bool {
	return s.Status == StatusActive
}

func (s *Snapshot) IsTradable() bool {
	return s.AcceptsTradeOffers && s.IsAvailable()
}
