package queries

import (
	"context"
	"time"

	"takas-api/internal/infra"
	"takas-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errs.New("product not found")
	ErrMatchQueryFailed = errs.New("match query failed")
)

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindMatchCandidatesFirstPage(ctx context.Context, excludeOwnerID uuid.UUID, limit int32) ([]*ProductView, error)
	FindMatchCandidatesKeyset(ctx context.Context, excludeOwnerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ProductView, error)
}

// MatchQueries suggests counterpart products for a given product: tradable
// listings owned by someone other than the product's owner. An empty result
// is a normal outcome, not an error.
type MatchQueries interface {
	SmartMatches(ctx context.Context, productID uuid.UUID, cursor *Cursor, limit int) ([]*ProductView, *Cursor, error)
}

type matchQueriesImpl struct {
	store ProductReadStore
}

func NewMatchQueries(store ProductReadStore) MatchQueries {
	return &matchQueriesImpl{store: store}
}

func (q *matchQueriesImpl) SmartMatches(ctx context.Context, productID uuid.UUID, cursor *Cursor, limit int) ([]*ProductView, *Cursor, error) {
	subject, err := q.store.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrProductNotFound
		}
		return nil, nil, errs.Mark(err, ErrMatchQueryFailed)
	}

	limit = ValidateLimit(limit)

	var rows []*ProductView
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindMatchCandidatesFirstPage(ctx, subject.OwnerID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindMatchCandidatesKeyset(ctx, subject.OwnerID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.Mark(err, ErrMatchQueryFailed)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
