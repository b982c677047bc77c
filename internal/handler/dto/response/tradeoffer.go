package response

import (
	"time"

	"takas-api/internal/domain/tradeoffer"
	"takas-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type TradeOfferResponse struct {
	ID                    uuid.UUID                     `json:"id"`
	OfferedBy             uuid.UUID                     `json:"offeredBy"`
	OfferedByName         string                        `json:"offeredByName"`
	RequestedFrom         uuid.UUID                     `json:"requestedFrom"`
	RequestedFromName     string                        `json:"requestedFromName"`
	OfferedProductID      uuid.UUID                     `json:"offeredProductId"`
	OfferedProductTitle   string                        `json:"offeredProductTitle"`
	RequestedProductID    uuid.UUID                     `json:"requestedProductId"`
	RequestedProductTitle string                        `json:"requestedProductTitle"`
	AdditionalCashCents   int64                         `json:"additionalCashCents"`
	Message               *string                       `json:"message,omitempty"`
	ResponseMessage       *string                       `json:"responseMessage,omitempty"`
	SpecialConditions     *tradeoffer.SpecialConditions `json:"specialConditions,omitempty"`
	Status                string                        `json:"status"`
	CreatedAt             time.Time                     `json:"createdAt"`
	UpdatedAt             time.Time                     `json:"updatedAt"`
}

type TradeOfferListItemResponse struct {
	ID                    uuid.UUID `json:"id"`
	OfferedBy             uuid.UUID `json:"offeredBy"`
	RequestedFrom         uuid.UUID `json:"requestedFrom"`
	OfferedProductID      uuid.UUID `json:"offeredProductId"`
	OfferedProductTitle   string    `json:"offeredProductTitle"`
	RequestedProductID    uuid.UUID `json:"requestedProductId"`
	RequestedProductTitle string    `json:"requestedProductTitle"`
	AdditionalCashCents   int64     `json:"additionalCashCents"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"createdAt"`
}

func FromTradeOfferView(rm *queries.TradeOfferView) *TradeOfferResponse {
	return &TradeOfferResponse{
		ID:                    rm.ID,
		OfferedBy:             rm.OfferedBy,
		OfferedByName:         rm.OfferedByName,
		RequestedFrom:         rm.RequestedFrom,
		RequestedFromName:     rm.RequestedFromName,
		OfferedProductID:      rm.OfferedProductID,
		OfferedProductTitle:   rm.OfferedProductTitle,
		RequestedProductID:    rm.RequestedProductID,
		RequestedProductTitle: rm.RequestedProductTitle,
		AdditionalCashCents:   rm.AdditionalCashCents,
		Message:               rm.Message,
		ResponseMessage:       rm.ResponseMessage,
		SpecialConditions:     rm.SpecialConditions,
		Status:                rm.Status,
		CreatedAt:             rm.CreatedAt,
		UpdatedAt:             rm.UpdatedAt,
	}
}

func FromTradeOfferListItem(rm *queries.TradeOfferListItem) *TradeOfferListItemResponse {
	return &TradeOfferListItemResponse{
		ID:                    rm.ID,
		OfferedBy:             rm.OfferedBy,
		RequestedFrom:         rm.RequestedFrom,
		OfferedProductID:      rm.OfferedProductID,
		OfferedProductTitle:   rm.OfferedProductTitle,
		RequestedProductID:    rm.RequestedProductID,
		RequestedProductTitle: rm.RequestedProductTitle,
		AdditionalCashCents:   rm.AdditionalCashCents,
		Status:                rm.Status,
		CreatedAt:             rm.CreatedAt,
	}
}

func FromTradeOfferList(items []*queries.TradeOfferListItem) []*TradeOfferListItemResponse {
	out := make([]*TradeOfferListItemResponse, len(items))
	for i, item := range items {
		out[i] = FromTradeOfferListItem(item)
	}
	return out
}
