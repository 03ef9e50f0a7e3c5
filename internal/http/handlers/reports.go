package handlers

import (
	"net/http"

	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Reports *services.ReportService
}

// GET /api/reports/product-by-category
func (h *ReportHandler) ProductsByCategory(c *gin.Context) {
	r, err := h.Reports.ProductsByCategory(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, r, "")
}

// GET /api/reports/product-by-category/:categoryId
func (h *ReportHandler) ProductsByCategoryID(c *gin.Context) {
	id, ok := ParseIDParam(c, "categoryId")
	if !ok {
		return
	}
	r, err := h.Reports.ProductsByCategoryID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, r, "")
}

// GET /api/reports/product-by-category.pdf
func (h *ReportHandler) ProductsByCategoryPDF(c *gin.Context) {
	pdf, filename, err := h.Reports.ProductsByCategoryPDF(c.Request.Context(), middleware.GetRequestID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, pdf, filename)
}

// GET /api/reports/stock-history?start=&end=
func (h *ReportHandler) StockHistory(c *gin.Context) {
	start, end, ok := dateRangeQuery(c)
	if !ok {
		return
	}
	r, err := h.Reports.StockHistory(c.Request.Context(), start, end)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, r, "")
}

// GET /api/reports/stock-history/product/:productId?start=&end=
func (h *ReportHandler) StockHistoryByProduct(c *gin.Context) {
	id, ok := ParseIDParam(c, "productId")
	if !ok {
		return
	}
	start, end, ok := dateRangeQuery(c)
	if !ok {
		return
	}
	r, err := h.Reports.StockHistoryByProduct(c.Request.Context(), id, start, end)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, r, "")
}

// GET /api/reports/stock-history.pdf?start=&end=
func (h *ReportHandler) StockHistoryPDF(c *gin.Context) {
	start, end, ok := dateRangeQuery(c)
	if !ok {
		return
	}
	pdf, filename, err := h.Reports.StockHistoryPDF(c.Request.Context(), middleware.GetRequestID(c), start, end)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, pdf, filename)
}

// GET /api/reports/purchase-details
func (h *ReportHandler) PurchaseDetails(c *gin.Context) {
	r, err := h.Reports.PurchaseDetails(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, r, "")
}

// GET /api/reports/purchase-details/:orderId
func (h *ReportHandler) PurchaseDetailsByOrder(c *gin.Context) {
	id, ok := ParseIDParam(c, "orderId")
	if !ok {
		return
	}
	r, err := h.Reports.PurchaseDetailsByOrder(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, r, "")
}

// GET /api/reports/inventory-value
func (h *ReportHandler) InventoryValue(c *gin.Context) {
	r, err := h.Reports.InventoryValue(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respond(c, http.StatusOK, r, "")
}

func sendPDF(c *gin.Context, pdf []byte, filename string) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
