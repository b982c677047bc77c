package readstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"takas-api/internal/domain/tradeoffer"
	"takas-api/internal/infra"
	"takas-api/internal/infra/db"
	"takas-api/internal/pkg/pgconv"
	"takas-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TradeOfferReadStore serves the query side. All rows are joined with the
// catalog and user tables so views carry display names and titles without a
// second round trip.
type TradeOfferReadStore struct {
	db db.Executor
}

func NewTradeOfferReadStore(pool *pgxpool.Pool) *TradeOfferReadStore {
	return &TradeOfferReadStore{db: pool}
}

const tradeOfferViewQuery = `
SELECT t.id, t.offered_by, ub.display_name, t.requested_from, ur.display_name,
       t.offered_product_id, po.title, t.requested_product_id, pr.title,
       t.additional_cash_cents, t.message, t.response_message, t.special_conditions,
       t.status, t.created_at, t.updated_at
FROM trade_offers t
JOIN users ub ON ub.id = t.offered_by
JOIN users ur ON ur.id = t.requested_from
JOIN products po ON po.id = t.offered_product_id
JOIN products pr ON pr.id = t.requested_product_id
WHERE t.id = $1`

func (r *TradeOfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TradeOfferView, error) {
	var (
		view       queries.TradeOfferView
		message    pgtype.Text
		response   pgtype.Text
		conditions []byte
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, tradeOfferViewQuery, id).Scan(
		&view.ID,
		&view.OfferedBy,
		&view.OfferedByName,
		&view.RequestedFrom,
		&view.RequestedFromName,
		&view.OfferedProductID,
		&view.OfferedProductTitle,
		&view.RequestedProductID,
		&view.RequestedProductTitle,
		&view.AdditionalCashCents,
		&message,
		&response,
		&conditions,
		&view.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trade offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find trade offer view", err)
	}

	view.Message = pgconv.StringPtrFromPgtype(message)
	view.ResponseMessage = pgconv.StringPtrFromPgtype(response)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	if len(conditions) > 0 {
		var sc tradeoffer.SpecialConditions
		if err := json.Unmarshal(conditions, &sc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode special conditions", err)
		}
		view.SpecialConditions = &sc
	}

	return &view, nil
}

const tradeOfferListSelect = `
SELECT t.id, t.offered_by, t.requested_from,
       t.offered_product_id, po.title, t.requested_product_id, pr.title,
       t.additional_cash_cents, t.status, t.created_at
FROM trade_offers t
JOIN products po ON po.id = t.offered_product_id
JOIN products pr ON pr.id = t.requested_product_id`

func (r *TradeOfferReadStore) FindByParticipantFirstPage(ctx context.Context, userID uuid.UUID, role queries.ParticipantRole, statuses []tradeoffer.Status, limit int32) ([]*queries.TradeOfferListItem, error) {
	sql, args := buildParticipantQuery(userID, role, statuses, nil, nil, limit)
	return r.queryListItems(ctx, sql, args)
}

func (r *TradeOfferReadStore) FindByParticipantKeyset(ctx context.Context, userID uuid.UUID, role queries.ParticipantRole, statuses []tradeoffer.Status, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.TradeOfferListItem, error) {
	sql, args := buildParticipantQuery(userID, role, statuses, &lastCreatedAt, &lastID, limit)
	return r.queryListItems(ctx, sql, args)
}

// buildParticipantQuery assembles the list query from the role predicate, an
// optional status filter and an optional keyset boundary. Placeholders are
// numbered in argument order.
func buildParticipantQuery(userID uuid.UUID, role queries.ParticipantRole, statuses []tradeoffer.Status, lastCreatedAt *time.Time, lastID *uuid.UUID, limit int32) (string, []any) {
	args := []any{userID}

	var predicate string
	switch role {
	case queries.RoleProposer:
		predicate = "t.offered_by = $1"
	case queries.RoleRecipient:
		predicate = "t.requested_from = $1"
	default:
		predicate = "(t.offered_by = $1 OR t.requested_from = $1)"
	}

	sql := tradeOfferListSelect + "\nWHERE " + predicate

	if len(statuses) > 0 {
		args = append(args, statusStrings(statuses))
		sql += fmt.Sprintf("\n  AND t.status = ANY($%d)", len(args))
	}

	if lastCreatedAt != nil && lastID != nil {
		args = append(args, *lastCreatedAt, *lastID)
		sql += fmt.Sprintf("\n  AND (t.created_at, t.id) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit)
	sql += fmt.Sprintf("\nORDER BY t.created_at DESC, t.id DESC\nLIMIT $%d", len(args))

	return sql, args
}

func (r *TradeOfferReadStore) queryListItems(ctx context.Context, sql string, args []any) ([]*queries.TradeOfferListItem, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list trade offers", err)
	}
	defer rows.Close()

	var result []*queries.TradeOfferListItem
	for rows.Next() {
		var (
			item      queries.TradeOfferListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID,
			&item.OfferedBy,
			&item.RequestedFrom,
			&item.OfferedProductID,
			&item.OfferedProductTitle,
			&item.RequestedProductID,
			&item.RequestedProductTitle,
			&item.AdditionalCashCents,
			&item.Status,
			&createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan trade offer row", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate trade offer rows", err)
	}

	return result, nil
}

func statusStrings(statuses []tradeoffer.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
