package tradeoffer

import (
	"takas-api/internal/domain/product"
	"takas-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSelfTrade           = errs.New("cannot trade with yourself")
	ErrNotOwner            = errs.New("offered product is not owned by the proposer")
	ErrTradeOffersDisabled = errs.New("requested product does not accept trade offers")
)

// EligibilityInput is everything the creation-time check needs. Product
// snapshots come from the catalog gateway; a nil snapshot means the id did
// not resolve and must be rejected by the caller before reaching here.
type EligibilityInput struct {
	OfferedBy        uuid.UUID
	RequestedFrom    uuid.UUID
	OfferedProduct   *product.Snapshot
	RequestedProduct *product.Snapshot
}

// CheckEligibility is a pure function; it has no side effects and is safe
// to call repeatedly. It returns the first violated rule:
//
//   - proposer and recipient must differ
//   - the offered product must belong to the proposer
//   - the requested product must belong to the recipient
//   - the requested product must accept trade offers
func CheckEligibility(in EligibilityInput) error {
	if in.OfferedBy == in.RequestedFrom {
		return ErrSelfTrade
	}
	if !in.OfferedProduct.IsOwnedBy(in.OfferedBy) {
		return ErrNotOwner
	}
	if !in.RequestedProduct.IsOwnedBy(in.RequestedFrom) {
		return ErrNotOwner
	}
	if !in.RequestedProduct.AcceptsTradeOffers {
		return ErrTradeOffersDisabled
	}
	return nil
}
