package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"takas-api/internal/domain/product"
	"takas-api/internal/domain/tradeoffer"
	reqdto "takas-api/internal/handler/dto/request"
	"takas-api/internal/infra"
	"takas-api/internal/infra/db"
	"takas-api/internal/pkg/clock"
	"takas-api/internal/pkg/config"
	"takas-api/internal/pkg/errs"
	"takas-api/internal/usecase/queries"
	"takas-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrOfferNotFound           = errs.New("trade offer not found")
	ErrProductNotFound         = errs.New("product not found")
	ErrProductNotTradable      = errs.New("product is not available for trading")
	ErrDuplicateOffer          = errs.New("outstanding offer already exists for this product pair")
	ErrOfferConflict           = errs.New("trade offer was modified concurrently")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrCatalogUnavailable      = errs.New("catalog unavailable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const eventTradeCompleted = "trade_completed"

type TradeOfferCommands interface {
	Create(ctx context.Context, req reqdto.CreateTradeOfferRequest, actorID uuid.UUID) (*queries.TradeOfferView, error)
	Accept(ctx context.Context, offerID, actorID uuid.UUID, req reqdto.RespondTradeOfferRequest) (*queries.TradeOfferView, error)
	Reject(ctx context.Context, offerID, actorID uuid.UUID, req reqdto.RespondTradeOfferRequest) (*queries.TradeOfferView, error)
	Cancel(ctx context.Context, offerID, actorID uuid.UUID) (*queries.TradeOfferView, error)
	Complete(ctx context.Context, offerID, actorID uuid.UUID) (*queries.TradeOfferView, error)
}

type tradeOfferUseCaseImpl struct {
	offerRepo    TradeOfferRepository
	eventRepo    TradeEventRepository
	catalog      CatalogGateway
	offerQueries queries.TradeOfferQueries
	pool         *pgxpool.Pool
	clock        clock.Clock
	catalogCfg   config.CatalogConfig
}

func NewTradeOfferUseCase(
	offerRepo TradeOfferRepository,
	eventRepo TradeEventRepository,
	catalog CatalogGateway,
	offerQueries queries.TradeOfferQueries,
	pool *pgxpool.Pool,
	clock clock.Clock,
	catalogCfg config.CatalogConfig,
) TradeOfferCommands {
	return &tradeOfferUseCaseImpl{
		offerRepo:    offerRepo,
		eventRepo:    eventRepo,
		catalog:      catalog,
		offerQueries: offerQueries,
		pool:         pool,
		clock:        clock,
		catalogCfg:   catalogCfg,
	}
}

func (c *tradeOfferUseCaseImpl) Create(
	ctx context.Context,
	req reqdto.CreateTradeOfferRequest,
	actorID uuid.UUID,
) (*queries.TradeOfferView, error) {
	offered, err := c.productSnapshot(ctx, req.OfferedProductID)
	if err != nil {
		return nil, err
	}
	requested, err := c.productSnapshot(ctx, req.RequestedProductID)
	if err != nil {
		return nil, err
	}

	if err := tradeoffer.CheckEligibility(tradeoffer.EligibilityInput{
		OfferedBy:        actorID,
		RequestedFrom:    req.RequestedFrom,
		OfferedProduct:   offered,
		RequestedProduct: requested,
	}); err != nil {
		return nil, err
	}
	// Eligibility already enforced the accepts-offers flag on the requested
	// side; the offered side only has to be an active listing.
	if !offered.IsAvailable() || !requested.IsTradable() {
		return nil, ErrProductNotTradable
	}

	offer, err := req.ToDomain(actorID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	exists, err := c.offerRepo.ExistsOutstandingPair(ctx, offer.OfferedProductID(), offer.RequestedProductID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return nil, ErrDuplicateOffer
	}

	offerID, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.Executor) (uuid.UUID, error) {
		return c.offerRepo.Create(ctx, tx, offer)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			// Racing creation of the same pair; the unique index is the arbiter.
			return nil, ErrDuplicateOffer
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrProductNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return c.offerView(ctx, offerID)
}

func (c *tradeOfferUseCaseImpl) Accept(
	ctx context.Context,
	offerID, actorID uuid.UUID,
	req reqdto.RespondTradeOfferRequest,
) (*queries.TradeOfferView, error) {
	response, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	offer, err := c.loadOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	expected := offer.Status()
	if err := offer.Accept(actorID, response); err != nil {
		return nil, err
	}

	if err := c.applyTransition(ctx, offer, expected, messagePtr(response)); err != nil {
		return nil, err
	}
	return c.offerView(ctx, offerID)
}

func (c *tradeOfferUseCaseImpl) Reject(
	ctx context.Context,
	offerID, actorID uuid.UUID,
	req reqdto.RespondTradeOfferRequest,
) (*queries.TradeOfferView, error) {
	response, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	offer, err := c.loadOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	expected := offer.Status()
	if err := offer.Reject(actorID, response); err != nil {
		return nil, err
	}

	if err := c.applyTransition(ctx, offer, expected, messagePtr(response)); err != nil {
		return nil, err
	}
	return c.offerView(ctx, offerID)
}

func (c *tradeOfferUseCaseImpl) Cancel(
	ctx context.Context,
	offerID, actorID uuid.UUID,
) (*queries.TradeOfferView, error) {
	offer, err := c.loadOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	expected := offer.Status()
	if err := offer.Cancel(actorID); err != nil {
		return nil, err
	}

	if err := c.applyTransition(ctx, offer, expected, nil); err != nil {
		return nil, err
	}
	return c.offerView(ctx, offerID)
}

func (c *tradeOfferUseCaseImpl) Complete(
	ctx context.Context,
	offerID, actorID uuid.UUID,
) (*queries.TradeOfferView, error) {
	offer, err := c.loadOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	expected := offer.Status()
	if err := offer.Complete(actorID); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]any{
		"offer_id":             offer.ID(),
		"offered_product_id":   offer.OfferedProductID(),
		"requested_product_id": offer.RequestedProductID(),
		"completed_by":         actorID,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	_, err = shared.WithDefaultRetry(ctx, c.pool, func(tx db.Executor) (struct{}, error) {
		if err := c.offerRepo.UpdateStatus(ctx, tx, offer.ID(), expected, offer.Status(), nil); err != nil {
			return struct{}{}, err
		}
		// Same transaction as the status flip so the event is never lost.
		if err := c.eventRepo.CreateJob(ctx, tx, offer.ID(), eventTradeCompleted, payload, c.clock.Now()); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, c.transitionError(err)
	}

	c.markProductsUnavailable(ctx, offer)

	return c.offerView(ctx, offerID)
}

func (c *tradeOfferUseCaseImpl) applyTransition(
	ctx context.Context,
	offer *tradeoffer.TradeOffer,
	expected tradeoffer.Status,
	responseMessage *string,
) error {
	_, err := shared.WithDefaultRetry(ctx, c.pool, func(tx db.Executor) (struct{}, error) {
		return struct{}{}, c.offerRepo.UpdateStatus(ctx, tx, offer.ID(), expected, offer.Status(), responseMessage)
	})
	if err != nil {
		return c.transitionError(err)
	}
	return nil
}

func (c *tradeOfferUseCaseImpl) transitionError(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return ErrOfferConflict
	case infra.IsKind(err, infra.KindNotFound):
		return ErrOfferNotFound
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

// markProductsUnavailable asks the catalog to retire both products after a
// completed trade. At-least-once with bounded retries; a persistent failure
// is logged and surfaced to operators, never rolled back into the trade.
func (c *tradeOfferUseCaseImpl) markProductsUnavailable(ctx context.Context, offer *tradeoffer.TradeOffer) {
	for _, productID := range []uuid.UUID{offer.OfferedProductID(), offer.RequestedProductID()} {
		var lastErr error
		for attempt := 0; attempt <= c.catalogCfg.MarkRetries; attempt++ {
			if lastErr = c.catalog.MarkProductUnavailable(ctx, productID); lastErr == nil {
				break
			}
			if attempt == c.catalogCfg.MarkRetries {
				break
			}
			select {
			case <-ctx.Done():
				slog.Warn("aborting catalog retries", "error", ctx.Err())
				attempt = c.catalogCfg.MarkRetries
			case <-time.After(c.catalogCfg.MarkRetryDelay):
			}
		}
		if lastErr != nil {
			slog.Error("failed to mark product unavailable after completed trade",
				"offer_id", offer.ID(),
				"product_id", productID,
				"error", lastErr)
		}
	}
}

func (c *tradeOfferUseCaseImpl) productSnapshot(ctx context.Context, id uuid.UUID) (*product.Snapshot, error) {
	snapshot, err := c.catalog.ProductByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}
	return snapshot, nil
}

func (c *tradeOfferUseCaseImpl) loadOffer(ctx context.Context, id uuid.UUID) (*tradeoffer.TradeOffer, error) {
	snapshot, err := c.offerRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snapshotToEntity(snapshot)
}

func snapshotToEntity(s *TradeOfferSnapshot) (*tradeoffer.TradeOffer, error) {
	status, err := tradeoffer.NewStatus(s.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	cash, err := tradeoffer.NewCashAmount(s.AdditionalCashCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	message, err := tradeoffer.NewMessage(derefOrEmpty(s.Message))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	response, err := tradeoffer.NewMessage(derefOrEmpty(s.ResponseMessage))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	conditions := tradeoffer.SpecialConditions{}
	if s.SpecialConditions != nil {
		conditions = *s.SpecialConditions
	}

	return tradeoffer.ReconstructTradeOffer(
		s.ID, s.OfferedBy, s.RequestedFrom,
		s.OfferedProductID, s.RequestedProductID,
		cash,
		message, response,
		conditions,
		status,
		s.CreatedAt, s.UpdatedAt,
	), nil
}

func (c *tradeOfferUseCaseImpl) offerView(ctx context.Context, id uuid.UUID) (*queries.TradeOfferView, error) {
	// Read-after-write: serve the same projection the GET endpoint returns
	view, err := c.offerQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func messagePtr(m tradeoffer.Message) *string {
	if m.IsEmpty() {
		return nil
	}
	s := m.String()
	return &s
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
