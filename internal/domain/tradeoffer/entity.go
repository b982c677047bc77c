package tradeoffer

import (
	"time"

	"takas-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errs.New("invalid trade offer status")
	ErrNegativeCashAmount = errs.New("cash amount cannot be negative")
	ErrMessageTooLong     = errs.New("message exceeds maximum length")

	ErrNotPending     = errs.New("trade offer is not pending")
	ErrNotAccepted    = errs.New("trade offer is not accepted")
	ErrNotRecipient   = errs.New("only the offer recipient may act on this")
	ErrNotProposer    = errs.New("only the offer proposer may act on this")
	ErrNotParticipant = errs.New("only a trade participant may act on this")
)

// TradeOffer is the aggregate for a single barter proposal between two
// users. Status transitions go through the methods below; persistence
// enforces the same transition again with a compare-and-set so racing
// actors cannot both win.
type TradeOffer struct {
	id                 uuid.UUID
	offeredBy          uuid.UUID
	requestedFrom      uuid.UUID
	offeredProductID   uuid.UUID
	requestedProductID uuid.UUID
	additionalCash     CashAmount
	message            Message
	responseMessage    Message
	specialConditions  SpecialConditions
	status             Status
	createdAt          time.Time
	updatedAt          time.Time
}

// NewTradeOffer builds a pending offer. Eligibility against the catalog is
// checked by the caller (see eligibility.go); this constructor only
// establishes the aggregate's own invariants.
func NewTradeOffer(
	offeredBy, requestedFrom uuid.UUID,
	offeredProductID, requestedProductID uuid.UUID,
	additionalCash CashAmount,
	message Message,
	conditions SpecialConditions,
) (*TradeOffer, error) {
	if offeredBy == requestedFrom {
		return nil, ErrSelfTrade
	}

	return &TradeOffer{
		id:                 uuid.New(),
		offeredBy:          offeredBy,
		requestedFrom:      requestedFrom,
		offeredProductID:   offeredProductID,
		requestedProductID: requestedProductID,
		additionalCash:     additionalCash,
		message:            message,
		specialConditions:  conditions,
		status:             StatusPending,
	}, nil
}

func ReconstructTradeOffer(
	id, offeredBy, requestedFrom uuid.UUID,
	offeredProductID, requestedProductID uuid.UUID,
	additionalCash CashAmount,
	message, responseMessage Message,
	conditions SpecialConditions,
	status Status,
	createdAt, updatedAt time.Time,
) *TradeOffer {
	return &TradeOffer{
		id:                 id,
		offeredBy:          offeredBy,
		requestedFrom:      requestedFrom,
		offeredProductID:   offeredProductID,
		requestedProductID: requestedProductID,
		additionalCash:     additionalCash,
		message:            message,
		responseMessage:    responseMessage,
		specialConditions:  conditions,
		status:             status,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Accept transitions pending -> accepted. Only the recipient may accept.
func (o *TradeOffer) Accept(actorID uuid.UUID, response Message) error {
	if actorID != o.requestedFrom {
		return ErrNotRecipient
	}
	if o.status != StatusPending {
		return ErrNotPending
	}
	o.status = StatusAccepted
	o.responseMessage = response
	return nil
}

// Reject transitions pending -> rejected. Only the recipient may reject.
func (o *TradeOffer) Reject(actorID uuid.UUID, response Message) error {
	if actorID != o.requestedFrom {
		return ErrNotRecipient
	}
	if o.status != StatusPending {
		return ErrNotPending
	}
	o.status = StatusRejected
	o.responseMessage = response
	return nil
}

// Cancel transitions pending -> cancelled. Only the proposer may cancel.
func (o *TradeOffer) Cancel(actorID uuid.UUID) error {
	if actorID != o.offeredBy {
		return ErrNotProposer
	}
	if o.status != StatusPending {
		return ErrNotPending
	}
	o.status = StatusCancelled
	return nil
}

// Complete transitions accepted -> completed. Either participant may
// complete once the offer is accepted.
func (o *TradeOffer) Complete(actorID uuid.UUID) error {
	if !o.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	if o.status != StatusAccepted {
		return ErrNotAccepted
	}
	o.status = StatusCompleted
	return nil
}

func (o *TradeOffer) IsParticipant(userID uuid.UUID) bool {
	return userID == o.offeredBy || userID == o.requestedFrom
}

func (o *TradeOffer) IsTerminal() bool {
	return o.status.IsTerminal()
}

func (o *TradeOffer) ID() uuid.UUID                        { return o.id }
func (o *TradeOffer) OfferedBy() uuid.UUID                 { return o.offeredBy }
func (o *TradeOffer) RequestedFrom() uuid.UUID             { return o.requestedFrom }
func (o *TradeOffer) OfferedProductID() uuid.UUID          { return o.offeredProductID }
func (o *TradeOffer) RequestedProductID() uuid.UUID        { return o.requestedProductID }
func (o *TradeOffer) AdditionalCash() CashAmount           { return o.additionalCash }
func (o *TradeOffer) Message() Message                     { return o.message }
func (o *TradeOffer) ResponseMessage() Message             { return o.responseMessage }
func (o *TradeOffer) SpecialConditions() SpecialConditions { return o.specialConditions }
func (o *TradeOffer) Status() Status                       { return o.status }
func (o *TradeOffer) CreatedAt() time.Time                 { return o.createdAt }
func (o *TradeOffer) UpdatedAt() time.Time                 { return o.updatedAt }
