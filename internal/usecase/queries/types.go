package queries

import (
	"time"

	"takas-api/internal/domain/tradeoffer"

	"github.com/google/uuid"
)

// TradeOfferView is the read-optimized detail projection of an offer,
// joined with the participants' display names and product titles.
type TradeOfferView struct {
	ID                    uuid.UUID                     `json:"id"`
	OfferedBy             uuid.UUID                     `json:"offered_by"`
	OfferedByName         string                        `json:"offered_by_name"`
	RequestedFrom         uuid.UUID                     `json:"requested_from"`
	RequestedFromName     string                        `json:"requested_from_name"`
	OfferedProductID      uuid.UUID                     `json:"offered_product_id"`
	OfferedProductTitle   string                        `json:"offered_product_title"`
	RequestedProductID    uuid.UUID                     `json:"requested_product_id"`
	RequestedProductTitle string                        `json:"requested_product_title"`
	AdditionalCashCents   int64                         `json:"additional_cash_cents"`
	Message               *string                       `json:"message,omitempty"`
	ResponseMessage       *string                       `json:"response_message,omitempty"`
	SpecialConditions     *tradeoffer.SpecialConditions `json:"special_conditions,omitempty"`
	Status                string                        `json:"status"`
	CreatedAt             time.Time                     `json:"created_at"`
	UpdatedAt             time.Time                     `json:"updated_at"`
}

// TradeOfferListItem is the compact projection used by the sent / received /
// history views.
type TradeOfferListItem struct {
	ID                    uuid.UUID `json:"id"`
	OfferedBy             uuid.UUID `json:"offered_by"`
	RequestedFrom         uuid.UUID `json:"requested_from"`
	OfferedProductID      uuid.UUID `json:"offered_product_id"`
	OfferedProductTitle   string    `json:"offered_product_title"`
	RequestedProductID    uuid.UUID `json:"requested_product_id"`
	RequestedProductTitle string    `json:"requested_product_title"`
	AdditionalCashCents   int64     `json:"additional_cash_cents"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
}

// ProductView is the candidate projection returned by the match suggester.
type ProductView struct {
	ID                 uuid.UUID `json:"id"`
	OwnerID            uuid.UUID `json:"owner_id"`
	OwnerName          string    `json:"owner_name"`
	Title              string    `json:"title"`
	AcceptsTradeOffers bool      `json:"accepts_trade_offers"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}
