//go:build unit || e2e

package builder

import (
	"time"

	"takas-api/internal/domain/product"
	domoffer "takas-api/internal/domain/tradeoffer"
	reqdto "takas-api/internal/handler/dto/request"
	"takas-api/internal/usecase/commands"
	"takas-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type TradeOfferBuilder struct {
	ID                    uuid.UUID
	OfferedBy             uuid.UUID
	OfferedByName         string
	RequestedFrom         uuid.UUID
	RequestedFromName     string
	OfferedProductID      uuid.UUID
	OfferedProductTitle   string
	RequestedProductID    uuid.UUID
	RequestedProductTitle string
	AdditionalCashCents   int64
	Message               string
	ResponseMessage       string
	SpecialConditions     domoffer.SpecialConditions
	Status                domoffer.Status
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func NewTradeOfferBuilder() *TradeOfferBuilder {
	now := time.Now()
	return &TradeOfferBuilder{
		ID:                    uuid.New(),
		OfferedBy:             uuid.New(),
		OfferedByName:         "Proposer",
		RequestedFrom:         uuid.New(),
		RequestedFromName:     "Recipient",
		OfferedProductID:      uuid.New(),
		OfferedProductTitle:   "Vintage Camera",
		RequestedProductID:    uuid.New(),
		RequestedProductTitle: "Mechanical Keyboard",
		AdditionalCashCents:   0,
		Message:               "Interested in a swap?",
		Status:                domoffer.StatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func (b *TradeOfferBuilder) With(mutate func(*TradeOfferBuilder)) *TradeOfferBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TradeOfferBuilder) BuildDomain() (*domoffer.TradeOffer, error) {
	cash, err := domoffer.NewCashAmount(b.AdditionalCashCents)
	if err != nil {
		return nil, err
	}
	message, err := domoffer.NewMessage(b.Message)
	if err != nil {
		return nil, err
	}
	return domoffer.NewTradeOffer(
		b.OfferedBy,
		b.RequestedFrom,
		b.OfferedProductID,
		b.RequestedProductID,
		cash,
		message,
		b.SpecialConditions,
	)
}

// BuildReconstructed bypasses the constructor so tests can start from any
// status, as rows loaded from the store do.
func (b *TradeOfferBuilder) BuildReconstructed() *domoffer.TradeOffer {
	cash, _ := domoffer.NewCashAmount(b.AdditionalCashCents)
	message, _ := domoffer.NewMessage(b.Message)
	response, _ := domoffer.NewMessage(b.ResponseMessage)
	return domoffer.ReconstructTradeOffer(
		b.ID,
		b.OfferedBy,
		b.RequestedFrom,
		b.OfferedProductID,
		b.RequestedProductID,
		cash,
		message,
		response,
		b.SpecialConditions,
		b.Status,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *TradeOfferBuilder) BuildCreateRequestDTO() reqdto.CreateTradeOfferRequest {
	req := reqdto.CreateTradeOfferRequest{
		RequestedFrom:       b.RequestedFrom,
		OfferedProductID:    b.OfferedProductID,
		RequestedProductID:  b.RequestedProductID,
		AdditionalCashCents: b.AdditionalCashCents,
	}
	if b.Message != "" {
		msg := b.Message
		req.Message = &msg
	}
	if !b.SpecialConditions.IsZero() {
		cond := b.SpecialConditions
		req.SpecialConditions = &cond
	}
	return req
}

func (b *TradeOfferBuilder) BuildView() *queries.TradeOfferView {
	view := &queries.TradeOfferView{
		ID:                    b.ID,
		OfferedBy:             b.OfferedBy,
		OfferedByName:         b.OfferedByName,
		RequestedFrom:         b.RequestedFrom,
		RequestedFromName:     b.RequestedFromName,
		OfferedProductID:      b.OfferedProductID,
		OfferedProductTitle:   b.OfferedProductTitle,
		RequestedProductID:    b.RequestedProductID,
		RequestedProductTitle: b.RequestedProductTitle,
		AdditionalCashCents:   b.AdditionalCashCents,
		Status:                b.Status.String(),
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
	if b.Message != "" {
		msg := b.Message
		view.Message = &msg
	}
	if b.ResponseMessage != "" {
		resp := b.ResponseMessage
		view.ResponseMessage = &resp
	}
	if !b.SpecialConditions.IsZero() {
		cond := b.SpecialConditions
		view.SpecialConditions = &cond
	}
	return view
}

func (b *TradeOfferBuilder) BuildListItem() *queries.TradeOfferListItem {
	return &queries.TradeOfferListItem{
		ID:                    b.ID,
		OfferedBy:             b.OfferedBy,
		RequestedFrom:         b.RequestedFrom,
		OfferedProductID:      b.OfferedProductID,
		OfferedProductTitle:   b.OfferedProductTitle,
		RequestedProductID:    b.RequestedProductID,
		RequestedProductTitle: b.RequestedProductTitle,
		AdditionalCashCents:   b.AdditionalCashCents,
		Status:                b.Status.String(),
		CreatedAt:             b.CreatedAt,
	}
}

func (b *TradeOfferBuilder) BuildSnapshot() *commands.TradeOfferSnapshot {
	snap := &commands.TradeOfferSnapshot{
		ID:                  b.ID,
		OfferedBy:           b.OfferedBy,
		RequestedFrom:       b.RequestedFrom,
		OfferedProductID:    b.OfferedProductID,
		RequestedProductID:  b.RequestedProductID,
		AdditionalCashCents: b.AdditionalCashCents,
		Status:              b.Status.String(),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
	if b.Message != "" {
		msg := b.Message
		snap.Message = &msg
	}
	if b.ResponseMessage != "" {
		resp := b.ResponseMessage
		snap.ResponseMessage = &resp
	}
	if !b.SpecialConditions.IsZero() {
		cond := b.SpecialConditions
		snap.SpecialConditions = &cond
	}
	return snap
}

func (b *TradeOfferBuilder) BuildOfferedProduct() *product.Snapshot {
	return &product.Snapshot{
		ID:                 b.OfferedProductID,
		OwnerID:            b.OfferedBy,
		Title:              b.OfferedProductTitle,
		AcceptsTradeOffers: true,
		Status:             product.StatusActive,
	}
}

func (b *TradeOfferBuilder) BuildRequestedProduct() *product.Snapshot {
	return &product.Snapshot{
		ID:                 b.RequestedProductID,
		OwnerID:            b.RequestedFrom,
		Title:              b.RequestedProductTitle,
		AcceptsTradeOffers: true,
		Status:             product.StatusActive,
	}
}

// Fluent builder methods
func (b *TradeOfferBuilder) WithOfferedBy(id uuid.UUID) *TradeOfferBuilder {
	b.OfferedBy = id
	return b
}

func (b *TradeOfferBuilder) WithRequestedFrom(id uuid.UUID) *TradeOfferBuilder {
	b.RequestedFrom = id
	return b
}

func (b *TradeOfferBuilder) WithCash(cents int64) *TradeOfferBuilder {
	b.AdditionalCashCents = cents
	return b
}

func (b *TradeOfferBuilder) WithMessage(message string) *TradeOfferBuilder {
	b.Message = message
	return b
}

func (b *TradeOfferBuilder) WithResponseMessage(message string) *TradeOfferBuilder {
	b.ResponseMessage = message
	return b
}

func (b *TradeOfferBuilder) WithConditions(c domoffer.SpecialConditions) *TradeOfferBuilder {
	b.SpecialConditions = c
	return b
}

func (b *TradeOfferBuilder) WithStatus(s domoffer.Status) *TradeOfferBuilder {
	b.Status = s
	return b
}

func (b *TradeOfferBuilder) WithCreatedAt(t time.Time) *TradeOfferBuilder {
	b.CreatedAt = t
	return b
}

func (b *TradeOfferBuilder) AsSelfTrade() *TradeOfferBuilder {
	b.RequestedFrom = b.OfferedBy
	return b
}

func (b *TradeOfferBuilder) AsAccepted() *TradeOfferBuilder {
	b.Status = domoffer.StatusAccepted
	return b
}

func (b *TradeOfferBuilder) AsCompleted() *TradeOfferBuilder {
	b.Status = domoffer.StatusCompleted
	return b
}
