package api

import (
	"net/http"
	"strconv"

	resdto "takas-api/internal/handler/dto/response"
	"takas-api/internal/handler/httperr"
	"takas-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	matches queries.MatchQueries
}

func NewProductHandler(matches queries.MatchQueries) *ProductHandler {
	return &ProductHandler{matches: matches}
}

// @Summary Smart matches
// @Description List tradable products owned by other users as trade candidates for a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id}/matches [get]
func (h *ProductHandler) SmartMatches(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format", nil)
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if iv, aerr := strconv.Atoi(v); aerr == nil {
			limit = iv
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.matches.SmartMatches(c.Request.Context(), productID, cursor, limit)
	if err != nil {
		respondOfferError(c, err)
		return
	}

	resp := gin.H{"matches": resdto.FromProductList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}
