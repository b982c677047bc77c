package readstore

import (
	"context"
	"time"

	"takas-api/internal/infra"
	"takas-api/internal/infra/db"
	"takas-api/internal/pkg/pgconv"
	"takas-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductReadStore struct {
	db db.Executor
}

func NewProductReadStore(pool *pgxpool.Pool) *ProductReadStore {
	return &ProductReadStore{db: pool}
}

const productViewQuery = `
SELECT p.id, p.owner_id, u.display_name, p.title, p.accepts_trade_offers, p.status, p.created_at
FROM products p
JOIN users u ON u.id = p.owner_id
WHERE p.id = $1`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	view, err := r.scanProduct(r.db.QueryRow(ctx, productViewQuery, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product view", err)
	}
	return view, nil
}

// Candidates are tradable listings owned by anyone but the excluded owner,
// newest first. Tradable means active with trade offers enabled.
const matchCandidatesFirstPageQuery = `
SELECT p.id, p.owner_id, u.display_name, p.title, p.accepts_trade_offers, p.status, p.created_at
FROM products p
JOIN users u ON u.id = p.owner_id
WHERE p.owner_id <> $1
  AND p.accepts_trade_offers
  AND p.status = 'active'
ORDER BY p.created_at DESC, p.id DESC
LIMIT $2`

const matchCandidatesKeysetQuery = `
SELECT p.id, p.owner_id, u.display_name, p.title, p.accepts_trade_offers, p.status, p.created_at
FROM products p
JOIN users u ON u.id = p.owner_id
WHERE p.owner_id <> $1
  AND p.accepts_trade_offers
  AND p.status = 'active'
  AND (p.created_at, p.id) < ($2, $3)
ORDER BY p.created_at DESC, p.id DESC
LIMIT $4`

func (r *ProductReadStore) FindMatchCandidatesFirstPage(ctx context.Context, excludeOwnerID uuid.UUID, limit int32) ([]*queries.ProductView, error) {
	return r.queryProducts(ctx, matchCandidatesFirstPageQuery, excludeOwnerID, limit)
}

func (r *ProductReadStore) FindMatchCandidatesKeyset(ctx context.Context, excludeOwnerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ProductView, error) {
	return r.queryProducts(ctx, matchCandidatesKeysetQuery, excludeOwnerID, lastCreatedAt, lastID, limit)
}

func (r *ProductReadStore) queryProducts(ctx context.Context, sql string, args ...any) ([]*queries.ProductView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list match candidates", err)
	}
	defer rows.Close()

	var result []*queries.ProductView
	for rows.Next() {
		view, err := r.scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ProductReadStore) scanProduct(row rowScanner) (*queries.ProductView, error) {
	var (
		view      queries.ProductView
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID,
		&view.OwnerID,
		&view.OwnerName,
		&view.Title,
		&view.AcceptsTradeOffers,
		&view.Status,
		&createdAt,
	); err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
