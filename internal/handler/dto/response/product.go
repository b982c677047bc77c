package response

import (
	"time"

	"takas-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID                 uuid.UUID `json:"id"`
	OwnerID            uuid.UUID `json:"ownerId"`
	OwnerName          string    `json:"ownerName"`
	Title              string    `json:"title"`
	AcceptsTradeOffers bool      `json:"acceptsTradeOffers"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

func FromProductView(rm *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:                 rm.ID,
		OwnerID:            rm.OwnerID,
		OwnerName:          rm.OwnerName,
		Title:              rm.Title,
		AcceptsTradeOffers: rm.AcceptsTradeOffers,
		Status:             rm.Status,
		CreatedAt:          rm.CreatedAt,
	}
}

func FromProductList(items []*queries.ProductView) []*ProductResponse {
	out := make([]*ProductResponse, len(items))
	for i, item := range items {
		out[i] = FromProductView(item)
	}
	return out
}
