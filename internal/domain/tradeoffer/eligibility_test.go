//go:build unit

package tradeoffer_test

import (
	"testing"

	"takas-api/internal/domain/product"
	"takas-api/internal/domain/tradeoffer"
	"takas-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCheckEligibility(t *testing.T) {
	input := func(b *builder.TradeOfferBuilder) tradeoffer.EligibilityInput {
		return tradeoffer.EligibilityInput{
			OfferedBy:        b.OfferedBy,
			RequestedFrom:    b.RequestedFrom,
			OfferedProduct:   b.BuildOfferedProduct(),
			RequestedProduct: b.BuildRequestedProduct(),
		}
	}

	t.Run("eligible pair", func(t *testing.T) {
		require.NoError(t, tradeoffer.CheckEligibility(input(builder.NewTradeOfferBuilder())))
	})

	t.Run("self trade", func(t *testing.T) {
		in := input(builder.NewTradeOfferBuilder())
		in.RequestedFrom = in.OfferedBy

		require.ErrorIs(t, tradeoffer.CheckEligibility(in), tradeoffer.ErrSelfTrade)
	})

	t.Run("offered product owned by someone else", func(t *testing.T) {
		in := input(builder.NewTradeOfferBuilder())
		in.OfferedProduct.OwnerID = uuid.New()

		require.ErrorIs(t, tradeoffer.CheckEligibility(in), tradeoffer.ErrNotOwner)
	})

	t.Run("requested product owned by someone else", func(t *testing.T) {
		in := input(builder.NewTradeOfferBuilder())
		in.RequestedProduct.OwnerID = uuid.New()

		require.ErrorIs(t, tradeoffer.CheckEligibility(in), tradeoffer.ErrNotOwner)
	})

	t.Run("requested product does not accept trade offers", func(t *testing.T) {
		in := input(builder.NewTradeOfferBuilder())
		in.RequestedProduct.AcceptsTradeOffers = false

		require.ErrorIs(t, tradeoffer.CheckEligibility(in), tradeoffer.ErrTradeOffersDisabled)
	})
}

func TestSnapshotTradability(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*product.Snapshot)
		tradable bool
	}{
		{
			name:     "active and accepting",
			mutate:   func(_ *product.Snapshot) {},
			tradable: true,
		},
		{
			name:     "reserved",
			mutate:   func(s *product.Snapshot) { s.Status = product.StatusReserved },
			tradable: false,
		},
		{
			name:     "sold",
			mutate:   func(s *product.Snapshot) { s.Status = product.StatusSold },
			tradable: false,
		},
		{
			name:     "deleted",
			mutate:   func(s *product.Snapshot) { s.Status = product.StatusDeleted },
			tradable: false,
		},
		{
			name:     "offers disabled",
			mutate:   func(s *product.Snapshot) { s.AcceptsTradeOffers = false },
			tradable: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			snapshot := builder.NewTradeOfferBuilder().BuildOfferedProduct()
			c.mutate(snapshot)

			require.Equal(t, c.tradable, snapshot.IsTradable())
		})
	}

	t.Run("disabled offers do not affect availability", func(t *testing.T) {
		snapshot := builder.NewTradeOfferBuilder().BuildOfferedProduct()
		snapshot.AcceptsTradeOffers = false

		require.True(t, snapshot.IsAvailable())
		require.False(t, snapshot.IsTradable())
	})

	t.Run("inactive product is not available", func(t *testing.T) {
		snapshot := builder.NewTradeOfferBuilder().BuildOfferedProduct()
		snapshot.Status = product.StatusReserved

		require.False(t, snapshot.IsAvailable())
	})
}
