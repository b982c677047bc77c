package queries

import (
	"context"
	"time"

	"takas-api/internal/domain/tradeoffer"
	"takas-api/internal/infra"
	"takas-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound       = errs.New("trade offer not found")
	ErrOfferQueryFailed    = errs.New("trade offer query failed")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
)

// ParticipantRole selects which side of an offer a user must be on for the
// sent / received views. History matches either side.
type ParticipantRole string

const (
	RoleProposer  ParticipantRole = "proposer"
	RoleRecipient ParticipantRole = "recipient"
	RoleAny       ParticipantRole = "any"
)

type TradeOfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TradeOfferView, error)
	FindByParticipantFirstPage(ctx context.Context, userID uuid.UUID, role ParticipantRole, statuses []tradeoffer.Status, limit int32) ([]*TradeOfferListItem, error)
	FindByParticipantKeyset(ctx context.Context, userID uuid.UUID, role ParticipantRole, statuses []tradeoffer.Status, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*TradeOfferListItem, error)
}

// TradeOfferQueries composes the sent / received / history views. The views
// are derived on read, never stored; sent and received are disjoint for any
// user because an offer's proposer and recipient always differ.
type TradeOfferQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TradeOfferView, error)
	ListSent(ctx context.Context, userID uuid.UUID, statusFilter *tradeoffer.Status, cursor *Cursor, limit int) ([]*TradeOfferListItem, *Cursor, error)
	ListReceived(ctx context.Context, userID uuid.UUID, statusFilter *tradeoffer.Status, cursor *Cursor, limit int) ([]*TradeOfferListItem, *Cursor, error)
	ListHistory(ctx context.Context, userID uuid.UUID, statusFilter *tradeoffer.Status, cursor *Cursor, limit int) ([]*TradeOfferListItem, *Cursor, error)
}

type tradeOfferQueriesImpl struct {
	store TradeOfferReadStore
}

func NewTradeOfferQueries(store TradeOfferReadStore) TradeOfferQueries {
	return &tradeOfferQueriesImpl{store: store}
}

func (q *tradeOfferQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TradeOfferView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrOfferQueryFailed)
	}
	return view, nil
}

func (q *tradeOfferQueriesImpl) ListSent(ctx context.Context, userID uuid.UUID, statusFilter *tradeoffer.Status, cursor *Cursor, limit int) ([]*TradeOfferListItem, *Cursor, error) {
	return q.list(ctx, userID, RoleProposer, singleStatus(statusFilter), cursor, limit)
}

func (q *tradeOfferQueriesImpl) ListReceived(ctx context.Context, userID uuid.UUID, statusFilter *tradeoffer.Status, cursor *Cursor, limit int) ([]*TradeOfferListItem, *Cursor, error) {
	return q.list(ctx, userID, RoleRecipient, singleStatus(statusFilter), cursor, limit)
}

func (q *tradeOfferQueriesImpl) ListHistory(ctx context.Context, userID uuid.UUID, statusFilter *tradeoffer.Status, cursor *Cursor, limit int) ([]*TradeOfferListItem, *Cursor, error) {
	statuses := tradeoffer.TerminalStatuses
	if statusFilter != nil {
		if !statusFilter.IsTerminal() {
			return nil, nil, ErrInvalidStatusFilter
		}
		statuses = []tradeoffer.Status{*statusFilter}
	}
	return q.list(ctx, userID, RoleAny, statuses, cursor, limit)
}

func (q *tradeOfferQueriesImpl) list(ctx context.Context, userID uuid.UUID, role ParticipantRole, statuses []tradeoffer.Status, cursor *Cursor, limit int) ([]*TradeOfferListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*TradeOfferListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByParticipantFirstPage(ctx, userID, role, statuses, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByParticipantKeyset(ctx, userID, role, statuses, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.Mark(err, ErrOfferQueryFailed)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func singleStatus(filter *tradeoffer.Status) []tradeoffer.Status {
	if filter == nil {
		return nil
	}
	return []tradeoffer.Status{*filter}
}
