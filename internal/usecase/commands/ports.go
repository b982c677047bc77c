package commands

import (
	"context"
	"time"

	"takas-api/internal/domain/product"
	"takas-api/internal/domain/tradeoffer"
	"takas-api/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshot prevents dependency on read-side query types (CQRS separation)
type TradeOfferSnapshot struct {
	ID                  uuid.UUID
	OfferedBy           uuid.UUID
	RequestedFrom       uuid.UUID
	OfferedProductID    uuid.UUID
	RequestedProductID  uuid.UUID
	AdditionalCashCents int64
	Message             *string
	ResponseMessage     *string
	SpecialConditions   *tradeoffer.SpecialConditions
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type TradeOfferRepository interface {
	Create(ctx context.Context, tx db.Executor, offer *tradeoffer.TradeOffer) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*TradeOfferSnapshot, error)
	// UpdateStatus is a compare-and-set: the row is touched only when its
	// current status equals expected. A miss surfaces as KindConflict when
	// the offer exists with a different status, KindNotFound otherwise.
	UpdateStatus(ctx context.Context, tx db.Executor, id uuid.UUID, expected, next tradeoffer.Status, responseMessage *string) error
	ExistsOutstandingPair(ctx context.Context, offeredProductID, requestedProductID uuid.UUID) (bool, error)
}

// CatalogGateway is the port to the catalog collaborator. Product data is
// read as immutable snapshots; MarkProductUnavailable is the only write and
// is called after a trade completes.
type CatalogGateway interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*product.Snapshot, error)
	MarkProductUnavailable(ctx context.Context, id uuid.UUID) error
}

type TradeEventRepository interface {
	CreateJob(ctx context.Context, tx db.Executor, offerID uuid.UUID, kind string, payload []byte, runAt time.Time) error
}
