package request

import (
	"strings"

	"takas-api/internal/domain/tradeoffer"

	"github.com/google/uuid"
)

type CreateTradeOfferRequest struct {
	RequestedFrom       uuid.UUID                     `json:"requested_from" binding:"required"`
	OfferedProductID    uuid.UUID                     `json:"offered_product_id" binding:"required"`
	RequestedProductID  uuid.UUID                     `json:"requested_product_id" binding:"required"`
	AdditionalCashCents int64                         `json:"additional_cash_cents,omitempty"`
	Message             *string                       `json:"message,omitempty"`
	SpecialConditions   *tradeoffer.SpecialConditions `json:"special_conditions,omitempty"`
}

func (r CreateTradeOfferRequest) ToDomain(actorID uuid.UUID) (*tradeoffer.TradeOffer, error) {
	cash, err := tradeoffer.NewCashAmount(r.AdditionalCashCents)
	if err != nil {
		return nil, err
	}

	message, err := tradeoffer.NewMessage(stringOrEmpty(r.Message))
	if err != nil {
		return nil, err
	}

	conditions := tradeoffer.SpecialConditions{}
	if r.SpecialConditions != nil {
		conditions = *r.SpecialConditions
	}

	return tradeoffer.NewTradeOffer(
		actorID,
		r.RequestedFrom,
		r.OfferedProductID,
		r.RequestedProductID,
		cash,
		message,
		conditions,
	)
}

type RespondTradeOfferRequest struct {
	ResponseMessage *string `json:"response_message,omitempty"`
}

func (r RespondTradeOfferRequest) ToDomain() (tradeoffer.Message, error) {
	return tradeoffer.NewMessage(stringOrEmpty(r.ResponseMessage))
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
