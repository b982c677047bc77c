package repository

import (
	"context"

	"takas-api/internal/domain/product"
	"takas-api/internal/infra"
	"takas-api/internal/infra/db"
	"takas-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCatalogGateway reads product snapshots straight from the catalog
// schema. A remote catalog deployment would swap this for an HTTP client
// behind the same usecase port.
type PostgresCatalogGateway struct {
	db db.Executor
}

func NewPostgresCatalogGateway(pool *pgxpool.Pool) *PostgresCatalogGateway {
	return &PostgresCatalogGateway{db: pool}
}

const productByIDQuery = `
SELECT id, owner_id, title, accepts_trade_offers, status
FROM products
WHERE id = $1`

func (g *PostgresCatalogGateway) ProductByID(ctx context.Context, id uuid.UUID) (*product.Snapshot, error) {
	var snapshot product.Snapshot
	err := g.db.QueryRow(ctx, productByIDQuery, id).Scan(
		&snapshot.ID,
		&snapshot.OwnerID,
		&snapshot.Title,
		&snapshot.AcceptsTradeOffers,
		&snapshot.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return &snapshot, nil
}

const markProductUnavailableQuery = `
UPDATE products
SET status = 'sold', updated_at = now()
WHERE id = $1 AND status <> 'sold'`

// MarkProductUnavailable is idempotent; marking an already sold product is
// a no-op success so completion retries converge.
func (g *PostgresCatalogGateway) MarkProductUnavailable(ctx context.Context, id uuid.UUID) error {
	tag, err := g.db.Exec(ctx, markProductUnavailableQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark product unavailable", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := g.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check product existence", err)
		}
		if !exists {
			return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
		}
	}
	return nil
}
