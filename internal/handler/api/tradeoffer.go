package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"takas-api/internal/domain/tradeoffer"
	reqdto "takas-api/internal/handler/dto/request"
	resdto "takas-api/internal/handler/dto/response"
	"takas-api/internal/handler/httperr"
	"takas-api/internal/handler/middleware"
	"takas-api/internal/usecase/commands"
	"takas-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TradeOfferHandler struct {
	cmds commands.TradeOfferCommands
	q    queries.TradeOfferQueries
}

func NewTradeOfferHandler(cmds commands.TradeOfferCommands, q queries.TradeOfferQueries) *TradeOfferHandler {
	return &TradeOfferHandler{cmds: cmds, q: q}
}

// @Summary Create trade offer
// @Description Propose a barter trade between two products
// @Tags trade-offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTradeOfferRequest true "Trade offer request"
// @Success 201 {object} resdto.TradeOfferResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /trade-offers [post]
func (h *TradeOfferHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateTradeOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req, actorID)
	if err != nil {
		respondOfferError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTradeOfferView(view))
}

// @Summary Get trade offer
// @Description Get a trade offer by ID
// @Tags trade-offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trade offer ID"
// @Success 200 {object} resdto.TradeOfferResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trade-offers/{id} [get]
func (h *TradeOfferHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid trade offer ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondOfferError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTradeOfferView(view))
}

// @Summary Accept trade offer
// @Description Accept a pending trade offer (recipient only)
// @Tags trade-offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trade offer ID"
// @Param request body reqdto.RespondTradeOfferRequest false "Optional response message"
// @Success 200 {object} resdto.TradeOfferResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /trade-offers/{id}/accept [post]
func (h *TradeOfferHandler) Accept(c *gin.Context) {
	h.respond(c, func(offerID, actorID uuid.UUID, req reqdto.RespondTradeOfferRequest) (*queries.TradeOfferView, error) {
		return h.cmds.Accept(c.Request.Context(), offerID, actorID, req)
	})
}

// @Summary Reject trade offer
// @Description Reject a pending trade offer (recipient only)
// @Tags trade-offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trade offer ID"
// @Param request body reqdto.RespondTradeOfferRequest false "Optional response message"
// @Success 200 {object} resdto.TradeOfferResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /trade-offers/{id}/reject [post]
func (h *TradeOfferHandler) Reject(c *gin.Context) {
	h.respond(c, func(offerID, actorID uuid.UUID, req reqdto.RespondTradeOfferRequest) (*queries.TradeOfferView, error) {
		return h.cmds.Reject(c.Request.Context(), offerID, actorID, req)
	})
}

// @Summary Cancel trade offer
// @Description Cancel a pending trade offer (proposer only)
// @Tags trade-offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trade offer ID"
// @Success 200 {object} resdto.TradeOfferResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /trade-offers/{id}/cancel [post]
func (h *TradeOfferHandler) Cancel(c *gin.Context) {
	offerID, actorID, ok := h.transitionArgs(c)
	if !ok {
		return
	}
	view, err := h.cmds.Cancel(c.Request.Context(), offerID, actorID)
	if err != nil {
		respondOfferError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTradeOfferView(view))
}

// @Summary Complete trade offer
// @Description Complete an accepted trade offer (either participant)
// @Tags trade-offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trade offer ID"
// @Success 200 {object} resdto.TradeOfferResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /trade-offers/{id}/complete [post]
func (h *TradeOfferHandler) Complete(c *gin.Context) {
	offerID, actorID, ok := h.transitionArgs(c)
	if !ok {
		return
	}
	view, err := h.cmds.Complete(c.Request.Context(), offerID, actorID)
	if err != nil {
		respondOfferError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTradeOfferView(view))
}

// @Summary List sent trade offers
// @Description List offers proposed by the current user
// @Tags trade-offers
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /trade-offers/sent [get]
func (h *TradeOfferHandler) ListSent(c *gin.Context) {
	h.list(c, h.q.ListSent)
}

// @Summary List received trade offers
// @Description List offers addressed to the current user
// @Tags trade-offers
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /trade-offers/received [get]
func (h *TradeOfferHandler) ListReceived(c *gin.Context) {
	h.list(c, h.q.ListReceived)
}

// @Summary Trade offer history
// @Description List terminal offers involving the current user
// @Tags trade-offers
// @Produce json
// @Security BearerAuth
// @Param status query string false "Terminal status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /trade-offers/history [get]
func (h *TradeOfferHandler) ListHistory(c *gin.Context) {
	h.list(c, h.q.ListHistory)
}

func (h *TradeOfferHandler) list(
	c *gin.Context,
	fn func(ctx context.Context, userID uuid.UUID, statusFilter *tradeoffer.Status, cursor *queries.Cursor, limit int) ([]*queries.TradeOfferListItem, *queries.Cursor, error),
) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	statusFilter, ok := parseStatusFilter(c)
	if !ok {
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = iv
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := fn(c.Request.Context(), userID, statusFilter, cursor, limit)
	if err != nil {
		respondOfferError(c, err)
		return
	}

	resp := gin.H{"offers": resdto.FromTradeOfferList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TradeOfferHandler) respond(
	c *gin.Context,
	fn func(offerID, actorID uuid.UUID, req reqdto.RespondTradeOfferRequest) (*queries.TradeOfferView, error),
) {
	offerID, actorID, ok := h.transitionArgs(c)
	if !ok {
		return
	}

	var req reqdto.RespondTradeOfferRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	view, err := fn(offerID, actorID, req)
	if err != nil {
		respondOfferError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTradeOfferView(view))
}

func (h *TradeOfferHandler) transitionArgs(c *gin.Context) (offerID, actorID uuid.UUID, ok bool) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid trade offer ID format", nil)
		return uuid.Nil, uuid.Nil, false
	}
	actorID, found := middleware.GetUserID(c)
	if !found {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return offerID, actorID, true
}

func parseStatusFilter(c *gin.Context) (*tradeoffer.Status, bool) {
	v := c.Query("status")
	if v == "" {
		return nil, true
	}
	status, err := tradeoffer.NewStatus(v)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
		return nil, false
	}
	return &status, true
}

func respondOfferError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOfferNotFound),
		errors.Is(err, commands.ErrProductNotFound),
		errors.Is(err, queries.ErrOfferNotFound),
		errors.Is(err, queries.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)

	case errors.Is(err, tradeoffer.ErrNotRecipient),
		errors.Is(err, tradeoffer.ErrNotProposer),
		errors.Is(err, tradeoffer.ErrNotParticipant):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to act on this trade offer", nil)

	case errors.Is(err, tradeoffer.ErrNotPending),
		errors.Is(err, tradeoffer.ErrNotAccepted),
		errors.Is(err, commands.ErrOfferConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Trade offer is not in a valid state for this action", nil)

	case errors.Is(err, commands.ErrDuplicateOffer):
		httperr.AbortWithError(c, http.StatusConflict, err, "An outstanding offer already exists for these products", nil)

	case errors.Is(err, tradeoffer.ErrSelfTrade),
		errors.Is(err, tradeoffer.ErrNotOwner),
		errors.Is(err, tradeoffer.ErrTradeOffersDisabled),
		errors.Is(err, commands.ErrProductNotTradable),
		errors.Is(err, commands.ErrDomainValidation),
		errors.Is(err, queries.ErrInvalidStatusFilter),
		errors.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)

	case errors.Is(err, commands.ErrCatalogUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Catalog temporarily unavailable", nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
