//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"takas-api/internal/domain/tradeoffer"
	"takas-api/internal/domain/user"
	"takas-api/internal/handler/api"
	resdto "takas-api/internal/handler/dto/response"
	"takas-api/internal/usecase/commands"
	"takas-api/internal/usecase/queries"
	"takas-api/tests/common/builder"
	"takas-api/tests/common/httptest"
	"takas-api/tests/common/testutil"
	mock_commands "takas-api/tests/mock/commands"
	mock_queries "takas-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TradeOfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *mock_commands.MockTradeOfferCommands
	mockQueries  *mock_queries.MockTradeOfferQueries
	handler      *api.TradeOfferHandler
	userID       uuid.UUID
}

func (s *TradeOfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = mock_commands.NewMockTradeOfferCommands(s.mockCtrl)
	s.mockQueries = mock_queries.NewMockTradeOfferQueries(s.mockCtrl)
	s.handler = api.NewTradeOfferHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	// Setup routes
	offers := s.router.Group("/api/trade-offers", authMiddleware)
	offers.POST("", s.handler.Create)
	offers.GET("/sent", s.handler.ListSent)
	offers.GET("/received", s.handler.ListReceived)
	offers.GET("/history", s.handler.ListHistory)
	offers.GET("/:id", s.handler.Get)
	offers.POST("/:id/accept", s.handler.Accept)
	offers.POST("/:id/reject", s.handler.Reject)
	offers.POST("/:id/cancel", s.handler.Cancel)
	offers.POST("/:id/complete", s.handler.Complete)
}

func (s *TradeOfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTradeOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(TradeOfferHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *TradeOfferHandlerTestSuite) TestCreate() {
	url := "/api/trade-offers"

	b := builder.NewTradeOfferBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.TradeOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Status, body.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: requested_from (required)", mutate: testutil.Field("requested_from", nil)},
			{name: "missing field: offered_product_id (required)", mutate: testutil.Field("offered_product_id", nil)},
			{name: "missing field: requested_product_id (required)", mutate: testutil.Field("requested_product_id", nil)},
			{name: "malformed uuid", mutate: testutil.Field("requested_from", "not-a-uuid")},
			{name: "non-numeric cash", mutate: testutil.Field("additional_cash_cents", "lots")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "product not found", commandsError: commands.ErrProductNotFound, expectedStatus: http.StatusNotFound},
			{name: "self trade", commandsError: tradeoffer.ErrSelfTrade, expectedStatus: http.StatusBadRequest},
			{name: "not owner", commandsError: tradeoffer.ErrNotOwner, expectedStatus: http.StatusBadRequest},
			{name: "offers disabled", commandsError: tradeoffer.ErrTradeOffersDisabled, expectedStatus: http.StatusBadRequest},
			{name: "not tradable", commandsError: commands.ErrProductNotTradable, expectedStatus: http.StatusBadRequest},
			{name: "message too long", commandsError: commands.ErrDomainValidation, expectedStatus: http.StatusBadRequest},
			{name: "duplicate pair", commandsError: commands.ErrDuplicateOffer, expectedStatus: http.StatusConflict},
			{name: "catalog down", commandsError: commands.ErrCatalogUnavailable, expectedStatus: http.StatusBadGateway},
			{name: "database failure", commandsError: commands.ErrDatabaseOperationFailed, expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *TradeOfferHandlerTestSuite) TestGet() {
	returnView := builder.NewTradeOfferBuilder().BuildView()
	url := "/api/trade-offers/" + returnView.ID.String()

	s.Run("success: returns 200 OK with offer detail", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.TradeOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.OfferedByName, body.OfferedByName)
		s.Equal(returnView.RequestedProductTitle, body.RequestedProductTitle)
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/trade-offers/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown offer", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrOfferNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/trade-offers/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *TradeOfferHandlerTestSuite) TestAccept() {
	returnView := builder.NewTradeOfferBuilder().AsAccepted().BuildView()
	url := "/api/trade-offers/" + returnView.ID.String() + "/accept"

	s.Run("success: accepts with response message", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), returnView.ID, s.userID, gomock.Any()).
			Return(returnView, nil).Times(1)
		body := map[string]any{"response_message": "deal"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var resp resdto.TradeOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(tradeoffer.StatusAccepted.String(), resp.Status)
	})

	s.Run("success: accepts without a body", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), returnView.ID, s.userID, gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps transition errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not the recipient", commandsError: tradeoffer.ErrNotRecipient, expectedStatus: http.StatusForbidden},
			{name: "no longer pending", commandsError: tradeoffer.ErrNotPending, expectedStatus: http.StatusConflict},
			{name: "lost the race", commandsError: commands.ErrOfferConflict, expectedStatus: http.StatusConflict},
			{name: "unknown offer", commandsError: commands.ErrOfferNotFound, expectedStatus: http.StatusNotFound},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Accept(gomock.Any(), returnView.ID, s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *TradeOfferHandlerTestSuite) TestReject() {
	returnView := builder.NewTradeOfferBuilder().WithStatus(tradeoffer.StatusRejected).BuildView()
	url := "/api/trade-offers/" + returnView.ID.String() + "/reject"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), returnView.ID, s.userID, gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var resp resdto.TradeOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(tradeoffer.StatusRejected.String(), resp.Status)
	})

	s.Run("error: 403 Forbidden for non-recipient", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), returnView.ID, s.userID, gomock.Any()).
			Return(nil, tradeoffer.ErrNotRecipient).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *TradeOfferHandlerTestSuite) TestCancel() {
	returnView := builder.NewTradeOfferBuilder().WithStatus(tradeoffer.StatusCancelled).BuildView()
	url := "/api/trade-offers/" + returnView.ID.String() + "/cancel"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), returnView.ID, s.userID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var resp resdto.TradeOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(tradeoffer.StatusCancelled.String(), resp.Status)
	})

	s.Run("error: 403 Forbidden for non-proposer", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), returnView.ID, s.userID).
			Return(nil, tradeoffer.ErrNotProposer).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *TradeOfferHandlerTestSuite) TestComplete() {
	returnView := builder.NewTradeOfferBuilder().AsCompleted().BuildView()
	url := "/api/trade-offers/" + returnView.ID.String() + "/complete"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), returnView.ID, s.userID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var resp resdto.TradeOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(tradeoffer.StatusCompleted.String(), resp.Status)
	})

	s.Run("error: maps completion errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "outsider", commandsError: tradeoffer.ErrNotParticipant, expectedStatus: http.StatusForbidden},
			{name: "not accepted yet", commandsError: tradeoffer.ErrNotAccepted, expectedStatus: http.StatusConflict},
			{name: "lost the race", commandsError: commands.ErrOfferConflict, expectedStatus: http.StatusConflict},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Complete(gomock.Any(), returnView.ID, s.userID).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestLists
// ================================================================================

func (s *TradeOfferHandlerTestSuite) TestListSent() {
	url := "/api/trade-offers/sent"

	s.Run("success: returns offers and next cursor", func() {
		items := []*queries.TradeOfferListItem{
			builder.NewTradeOfferBuilder().BuildListItem(),
			builder.NewTradeOfferBuilder().BuildListItem(),
		}
		next := &queries.Cursor{After: "opaque-cursor"}
		s.mockQueries.EXPECT().ListSent(gomock.Any(), s.userID, nil, nil, 0).
			Return(items, next, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Offers     []resdto.TradeOfferListItemResponse `json:"offers"`
			NextCursor string                              `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Offers, 2)
		s.Equal("opaque-cursor", body.NextCursor)
	})

	s.Run("success: passes status, cursor and limit through", func() {
		pending := tradeoffer.StatusPending
		s.mockQueries.EXPECT().ListSent(gomock.Any(), s.userID, &pending, &queries.Cursor{After: "abc"}, 5).
			Return(nil, nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=pending&after=abc&limit=5", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=bogus", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request for invalid cursor", func() {
		s.mockQueries.EXPECT().ListSent(gomock.Any(), s.userID, nil, &queries.Cursor{After: "garbage"}, 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *TradeOfferHandlerTestSuite) TestListReceived() {
	url := "/api/trade-offers/received"

	s.Run("success: returns offers without cursor", func() {
		items := []*queries.TradeOfferListItem{builder.NewTradeOfferBuilder().BuildListItem()}
		s.mockQueries.EXPECT().ListReceived(gomock.Any(), s.userID, nil, nil, 0).
			Return(items, nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "next_cursor")
	})
}

func (s *TradeOfferHandlerTestSuite) TestListHistory() {
	url := "/api/trade-offers/history"

	s.Run("success: returns terminal offers", func() {
		items := []*queries.TradeOfferListItem{
			builder.NewTradeOfferBuilder().AsCompleted().BuildListItem(),
		}
		s.mockQueries.EXPECT().ListHistory(gomock.Any(), s.userID, nil, nil, 0).
			Return(items, nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body struct {
			Offers []resdto.TradeOfferListItemResponse `json:"offers"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Offers, 1)
		s.Equal(tradeoffer.StatusCompleted.String(), body.Offers[0].Status)
	})

	s.Run("error: 400 Bad Request for non-terminal filter", func() {
		pending := tradeoffer.StatusPending
		s.mockQueries.EXPECT().ListHistory(gomock.Any(), s.userID, &pending, nil, 0).
			Return(nil, nil, queries.ErrInvalidStatusFilter).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=pending", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
