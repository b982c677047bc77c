package repository

import (
	"context"
	"time"

	"takas-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TradeEventRepository is the outbox for domain events. Rows are written in
// the same transaction as the state change they describe; a relay worker
// drains them later.
type TradeEventRepository struct {
	db db.Executor
}

func NewTradeEventRepository(pool *pgxpool.Pool) *TradeEventRepository {
	return &TradeEventRepository{db: pool}
}

const createTradeEventQuery = `
INSERT INTO trade_events (id, offer_id, kind, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, 'pending')`

func (r *TradeEventRepository) CreateJob(ctx context.Context, tx db.Executor, offerID uuid.UUID, kind string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, createTradeEventQuery, uuid.New(), offerID, kind, payload, runAt)
	if err != nil {
		return wrapWriteErr("failed to create trade event job", err)
	}
	return nil
}
