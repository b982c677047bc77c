//go:build unit

package tradeoffer_test

import (
	"strings"
	"testing"

	"takas-api/internal/domain/tradeoffer"
	"takas-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.TradeOfferBuilder)
	errIs  error
}

func TestTradeOffer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewTradeOfferBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, tradeoffer.StatusPending, actual.Status())
		assert.Equal(t, "Interested in a swap?", actual.Message().String())
		assert.True(t, actual.ResponseMessage().IsEmpty())
		assert.True(t, actual.AdditionalCash().IsZero())
		assert.False(t, actual.IsTerminal())
	})

	t.Run("creation validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "self trade",
				mutate: func(b *builder.TradeOfferBuilder) { b.AsSelfTrade() },
				errIs:  tradeoffer.ErrSelfTrade,
			},
			{
				name:   "negative cash amount",
				mutate: func(b *builder.TradeOfferBuilder) { b.WithCash(-1) },
				errIs:  tradeoffer.ErrNegativeCashAmount,
			},
			{
				name:   "zero cash amount",
				mutate: func(b *builder.TradeOfferBuilder) { b.WithCash(0) },
			},
			{
				name:   "positive cash amount",
				mutate: func(b *builder.TradeOfferBuilder) { b.WithCash(2500) },
			},
			{
				name:   "empty message",
				mutate: func(b *builder.TradeOfferBuilder) { b.WithMessage("") },
			},
			{
				name: "maximum length message",
				mutate: func(b *builder.TradeOfferBuilder) {
					b.WithMessage(strings.Repeat("a", tradeoffer.MaxMessageLength))
				},
			},
			{
				name: "message exceeds maximum length",
				mutate: func(b *builder.TradeOfferBuilder) {
					b.WithMessage(strings.Repeat("a", tradeoffer.MaxMessageLength+1))
				},
				errIs: tradeoffer.ErrMessageTooLong,
			},
		})
	})

	t.Run("message trimming", func(t *testing.T) {
		offer, err := builder.NewTradeOfferBuilder().WithMessage("  let's trade  ").BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, offer)

		assert.Equal(t, "let's trade", offer.Message().String())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder()
		offer1, err1 := b.BuildDomain()
		offer2, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, offer1.ID(), offer2.ID())
	})
}

func TestTradeOfferTransitions(t *testing.T) {
	response, err := tradeoffer.NewMessage("sounds good")
	require.NoError(t, err)
	none := tradeoffer.Message{}

	t.Run("accept by recipient", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder()
		offer := b.BuildReconstructed()

		require.NoError(t, offer.Accept(b.RequestedFrom, response))
		assert.Equal(t, tradeoffer.StatusAccepted, offer.Status())
		assert.Equal(t, "sounds good", offer.ResponseMessage().String())
	})

	t.Run("accept by proposer is forbidden", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder()
		offer := b.BuildReconstructed()

		err := offer.Accept(b.OfferedBy, response)
		require.ErrorIs(t, err, tradeoffer.ErrNotRecipient)
		assert.Equal(t, tradeoffer.StatusPending, offer.Status())
	})

	t.Run("accept by outsider is forbidden", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder()
		offer := b.BuildReconstructed()

		require.ErrorIs(t, offer.Accept(uuid.New(), response), tradeoffer.ErrNotRecipient)
	})

	t.Run("reject by recipient", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder()
		offer := b.BuildReconstructed()

		require.NoError(t, offer.Reject(b.RequestedFrom, response))
		assert.Equal(t, tradeoffer.StatusRejected, offer.Status())
		assert.True(t, offer.IsTerminal())
	})

	t.Run("reject by proposer is forbidden", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder()
		offer := b.BuildReconstructed()

		require.ErrorIs(t, offer.Reject(b.OfferedBy, response), tradeoffer.ErrNotRecipient)
	})

	t.Run("cancel by proposer", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder()
		offer := b.BuildReconstructed()

		require.NoError(t, offer.Cancel(b.OfferedBy))
		assert.Equal(t, tradeoffer.StatusCancelled, offer.Status())
		assert.True(t, offer.IsTerminal())
	})

	t.Run("cancel by recipient is forbidden", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder()
		offer := b.BuildReconstructed()

		require.ErrorIs(t, offer.Cancel(b.RequestedFrom), tradeoffer.ErrNotProposer)
	})

	t.Run("complete accepted offer by either participant", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder().AsAccepted()

		proposerSide := b.BuildReconstructed()
		require.NoError(t, proposerSide.Complete(b.OfferedBy))
		assert.Equal(t, tradeoffer.StatusCompleted, proposerSide.Status())

		recipientSide := b.BuildReconstructed()
		require.NoError(t, recipientSide.Complete(b.RequestedFrom))
		assert.Equal(t, tradeoffer.StatusCompleted, recipientSide.Status())
	})

	t.Run("complete by outsider is forbidden", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder().AsAccepted()
		offer := b.BuildReconstructed()

		require.ErrorIs(t, offer.Complete(uuid.New()), tradeoffer.ErrNotParticipant)
	})

	t.Run("complete requires accepted status", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder()
		offer := b.BuildReconstructed()

		require.ErrorIs(t, offer.Complete(b.OfferedBy), tradeoffer.ErrNotAccepted)
	})

	t.Run("terminal offers are immutable", func(t *testing.T) {
		for _, status := range tradeoffer.TerminalStatuses {
			b := builder.NewTradeOfferBuilder().WithStatus(status)
			offer := b.BuildReconstructed()

			assert.ErrorIs(t, offer.Accept(b.RequestedFrom, none), tradeoffer.ErrNotPending, "accept on %s", status)
			assert.ErrorIs(t, offer.Reject(b.RequestedFrom, none), tradeoffer.ErrNotPending, "reject on %s", status)
			assert.ErrorIs(t, offer.Cancel(b.OfferedBy), tradeoffer.ErrNotPending, "cancel on %s", status)
			if status != tradeoffer.StatusCompleted {
				assert.ErrorIs(t, offer.Complete(b.OfferedBy), tradeoffer.ErrNotAccepted, "complete on %s", status)
			}
		}
	})

	t.Run("accepted offer cannot be cancelled", func(t *testing.T) {
		b := builder.NewTradeOfferBuilder().AsAccepted()
		offer := b.BuildReconstructed()

		require.ErrorIs(t, offer.Cancel(b.OfferedBy), tradeoffer.ErrNotPending)
	})
}

func TestStatus(t *testing.T) {
	t.Run("transition table", func(t *testing.T) {
		cases := []struct {
			from    tradeoffer.Status
			to      tradeoffer.Status
			allowed bool
		}{
			{tradeoffer.StatusPending, tradeoffer.StatusAccepted, true},
			{tradeoffer.StatusPending, tradeoffer.StatusRejected, true},
			{tradeoffer.StatusPending, tradeoffer.StatusCancelled, true},
			{tradeoffer.StatusPending, tradeoffer.StatusCompleted, false},
			{tradeoffer.StatusAccepted, tradeoffer.StatusCompleted, true},
			{tradeoffer.StatusAccepted, tradeoffer.StatusRejected, false},
			{tradeoffer.StatusAccepted, tradeoffer.StatusCancelled, false},
			{tradeoffer.StatusRejected, tradeoffer.StatusPending, false},
			{tradeoffer.StatusCancelled, tradeoffer.StatusAccepted, false},
			{tradeoffer.StatusCompleted, tradeoffer.StatusPending, false},
		}
		for _, c := range cases {
			assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
		}
	})

	t.Run("parse", func(t *testing.T) {
		status, err := tradeoffer.NewStatus("accepted")
		require.NoError(t, err)
		assert.Equal(t, tradeoffer.StatusAccepted, status)

		_, err = tradeoffer.NewStatus("bogus")
		require.ErrorIs(t, err, tradeoffer.ErrInvalidStatus)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewTradeOfferBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
