package handlers

import (
	"net/http"
	"strings"

	"backoffice/internal/dto"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	Service *services.InventoryService
}

// Adjust handles POST /api/inventories/:id/adjust.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AdjustStockRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	inv, err := h.Service.AdjustStock(c.Request.Context(), middleware.GetRequestID(c), id, *req.NewQuantity, req.Notes)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, inv, "Stock adjusted successfully")
}

// History handles GET /api/inventory-histories. A productId query narrows the
// list to one product; start and end narrow it to a date range.
func (h *InventoryHandler) History(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := strings.TrimSpace(c.Query("productId")); raw != "" {
		productID, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid productId", err.Error())
			return
		}
		rows, err := h.Service.HistoryByProduct(ctx, productID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		respond(c, http.StatusOK, rows, "")
		return
	}

	start, end, ok := dateRangeQuery(c)
	if !ok {
		return
	}
	if start == nil && end == nil {
		rows, err := h.Service.ListHistory(ctx)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		respond(c, http.StatusOK, rows, "")
		return
	}
	if start == nil || end == nil {
		RespondError(c, http.StatusBadRequest, "start and end must be given together")
		return
	}
	rows, err := h.Service.HistoryBetween(ctx, *start, *end)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, rows, "")
}
