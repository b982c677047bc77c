//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"takas-api/internal/domain/product"
	"takas-api/internal/domain/tradeoffer"
	"takas-api/internal/infra"
	"takas-api/internal/pkg/clock"
	"takas-api/internal/pkg/config"
	"takas-api/internal/pkg/errs"
	"takas-api/internal/usecase/commands"
	"takas-api/tests/common/builder"
	commandsmock "takas-api/tests/mock/commands"
	queriesmock "takas-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Validation Tests
// =============================================================================

// Create's validation runs entirely before the insert transaction, so these
// cases exercise the usecase with mocked ports and no database pool.
func TestTradeOfferUseCase_Create_Validation(t *testing.T) {
	ctx := context.Background()

	type mocks struct {
		catalog *commandsmock.MockCatalogGateway
		repo    *commandsmock.MockTradeOfferRepository
	}

	testCases := []struct {
		name          string
		mutate        func(*builder.TradeOfferBuilder)
		setupMock     func(*builder.TradeOfferBuilder, mocks)
		expectedError error
	}{
		{
			name: "offered product with offers disabled is still valid trade currency",
			setupMock: func(b *builder.TradeOfferBuilder, m mocks) {
				offered := b.BuildOfferedProduct()
				offered.AcceptsTradeOffers = false
				m.catalog.EXPECT().ProductByID(ctx, b.OfferedProductID).Return(offered, nil)
				m.catalog.EXPECT().ProductByID(ctx, b.RequestedProductID).Return(b.BuildRequestedProduct(), nil)
				// Reaching the duplicate-pair check proves the availability
				// gate let the offer through.
				m.repo.EXPECT().ExistsOutstandingPair(ctx, b.OfferedProductID, b.RequestedProductID).Return(true, nil)
			},
			expectedError: commands.ErrDuplicateOffer,
		},
		{
			name: "reserved offered product is not available",
			setupMock: func(b *builder.TradeOfferBuilder, m mocks) {
				offered := b.BuildOfferedProduct()
				offered.Status = product.StatusReserved
				m.catalog.EXPECT().ProductByID(ctx, b.OfferedProductID).Return(offered, nil)
				m.catalog.EXPECT().ProductByID(ctx, b.RequestedProductID).Return(b.BuildRequestedProduct(), nil)
			},
			expectedError: commands.ErrProductNotTradable,
		},
		{
			name: "sold requested product is not available",
			setupMock: func(b *builder.TradeOfferBuilder, m mocks) {
				requested := b.BuildRequestedProduct()
				requested.Status = product.StatusSold
				m.catalog.EXPECT().ProductByID(ctx, b.OfferedProductID).Return(b.BuildOfferedProduct(), nil)
				m.catalog.EXPECT().ProductByID(ctx, b.RequestedProductID).Return(requested, nil)
			},
			expectedError: commands.ErrProductNotTradable,
		},
		{
			name: "requested product does not accept trade offers",
			setupMock: func(b *builder.TradeOfferBuilder, m mocks) {
				requested := b.BuildRequestedProduct()
				requested.AcceptsTradeOffers = false
				m.catalog.EXPECT().ProductByID(ctx, b.OfferedProductID).Return(b.BuildOfferedProduct(), nil)
				m.catalog.EXPECT().ProductByID(ctx, b.RequestedProductID).Return(requested, nil)
			},
			expectedError: tradeoffer.ErrTradeOffersDisabled,
		},
		{
			name:   "self trade",
			mutate: func(b *builder.TradeOfferBuilder) { b.AsSelfTrade() },
			setupMock: func(b *builder.TradeOfferBuilder, m mocks) {
				m.catalog.EXPECT().ProductByID(ctx, b.OfferedProductID).Return(b.BuildOfferedProduct(), nil)
				m.catalog.EXPECT().ProductByID(ctx, b.RequestedProductID).Return(b.BuildRequestedProduct(), nil)
			},
			expectedError: tradeoffer.ErrSelfTrade,
		},
		{
			name: "offered product does not resolve",
			setupMock: func(b *builder.TradeOfferBuilder, m mocks) {
				m.catalog.EXPECT().ProductByID(ctx, b.OfferedProductID).
					Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))
			},
			expectedError: commands.ErrProductNotFound,
		},
		{
			name: "catalog dependency failure",
			setupMock: func(b *builder.TradeOfferBuilder, m mocks) {
				m.catalog.EXPECT().ProductByID(ctx, b.OfferedProductID).
					Return(nil, errs.New("catalog timeout"))
			},
			expectedError: commands.ErrCatalogUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b := builder.NewTradeOfferBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}

			m := mocks{
				catalog: commandsmock.NewMockCatalogGateway(ctrl),
				repo:    commandsmock.NewMockTradeOfferRepository(ctrl),
			}
			tc.setupMock(b, m)

			uc := commands.NewTradeOfferUseCase(
				m.repo,
				commandsmock.NewMockTradeEventRepository(ctrl),
				m.catalog,
				queriesmock.NewMockTradeOfferQueries(ctrl),
				nil, // validation failures never reach the pool
				clock.NewMockClock(time.Now()),
				config.NewTestConfig().Catalog,
			)

			view, err := uc.Create(ctx, b.BuildCreateRequestDTO(), b.OfferedBy)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedError)
			assert.Nil(t, view)
		})
	}
}
