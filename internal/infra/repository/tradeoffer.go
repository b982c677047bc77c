package repository

import (
	"context"
	"encoding/json"

	"takas-api/internal/domain/tradeoffer"
	"takas-api/internal/infra"
	"takas-api/internal/infra/db"
	"takas-api/internal/pkg/pgconv"
	"takas-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TradeOfferRepository struct {
	db db.Executor
}

func NewTradeOfferRepository(pool *pgxpool.Pool) *TradeOfferRepository {
	return &TradeOfferRepository{db: pool}
}

const createTradeOfferQuery = `
INSERT INTO trade_offers (
    id, offered_by, requested_from,
    offered_product_id, requested_product_id,
    additional_cash_cents, message, special_conditions, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *TradeOfferRepository) Create(ctx context.Context, tx db.Executor, offer *tradeoffer.TradeOffer) (uuid.UUID, error) {
	conditions, err := marshalConditions(offer.SpecialConditions())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode special conditions", err)
	}

	var resultID uuid.UUID
	err = tx.QueryRow(ctx, createTradeOfferQuery,
		offer.ID(),
		offer.OfferedBy(),
		offer.RequestedFrom(),
		offer.OfferedProductID(),
		offer.RequestedProductID(),
		offer.AdditionalCash().Cents(),
		messageToPgtype(offer.Message()),
		conditions,
		offer.Status().String(),
	).Scan(&resultID)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create trade offer", err)
	}

	return resultID, nil
}

const findTradeOfferQuery = `
SELECT id, offered_by, requested_from,
       offered_product_id, requested_product_id,
       additional_cash_cents, message, response_message, special_conditions,
       status, created_at, updated_at
FROM trade_offers
WHERE id = $1`

func (r *TradeOfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.TradeOfferSnapshot, error) {
	var (
		snapshot   commands.TradeOfferSnapshot
		message    pgtype.Text
		response   pgtype.Text
		conditions []byte
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findTradeOfferQuery, id).Scan(
		&snapshot.ID,
		&snapshot.OfferedBy,
		&snapshot.RequestedFrom,
		&snapshot.OfferedProductID,
		&snapshot.RequestedProductID,
		&snapshot.AdditionalCashCents,
		&message,
		&response,
		&conditions,
		&snapshot.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trade offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find trade offer by ID", err)
	}

	snapshot.Message = pgconv.StringPtrFromPgtype(message)
	snapshot.ResponseMessage = pgconv.StringPtrFromPgtype(response)
	snapshot.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snapshot.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	if len(conditions) > 0 {
		var sc tradeoffer.SpecialConditions
		if err := json.Unmarshal(conditions, &sc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode special conditions", err)
		}
		snapshot.SpecialConditions = &sc
	}

	return &snapshot, nil
}

const updateTradeOfferStatusQuery = `
UPDATE trade_offers
SET status = $1,
    response_message = COALESCE($2, response_message),
    updated_at = now()
WHERE id = $3 AND status = $4`

// UpdateStatus flips the status only when the stored value still matches
// expected. Exactly one of two racing transitions can match the predicate.
func (r *TradeOfferRepository) UpdateStatus(ctx context.Context, tx db.Executor, id uuid.UUID, expected, next tradeoffer.Status, responseMessage *string) error {
	tag, err := tx.Exec(ctx, updateTradeOfferStatusQuery,
		next.String(),
		pgconv.StringPtrToPgtype(responseMessage),
		id,
		expected.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update trade offer status", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// The predicate missed: distinguish a lost race from a missing row.
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM trade_offers WHERE id = $1)`, id).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to check trade offer existence", err)
	}
	if exists {
		return infra.WrapRepoErr("trade offer status changed concurrently", nil, infra.KindConflict)
	}
	return infra.WrapRepoErr("trade offer not found", nil, infra.KindNotFound)
}

const outstandingPairQuery = `
SELECT EXISTS (
    SELECT 1 FROM trade_offers
    WHERE offered_product_id = $1
      AND requested_product_id = $2
      AND status IN ('pending', 'accepted')
)`

func (r *TradeOfferRepository) ExistsOutstandingPair(ctx context.Context, offeredProductID, requestedProductID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, outstandingPairQuery, offeredProductID, requestedProductID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check outstanding offer pair", err)
	}
	return exists, nil
}

func messageToPgtype(m tradeoffer.Message) pgtype.Text {
	if m.IsEmpty() {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(m.String())
}

func marshalConditions(sc tradeoffer.SpecialConditions) ([]byte, error) {
	if sc.IsZero() {
		return nil, nil
	}
	return json.Marshal(sc)
}
