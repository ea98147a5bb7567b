package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/SscSPs/compta_maroc/internal/middleware"
	"github.com/gin-gonic/gin"
)

type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvc
	now            func() time.Time
}

// RegisterInvoiceRoutes registers routes related to invoices.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvc) {
	h := &invoiceHandler{invoiceService: invoiceService, now: time.Now}

	invoices := rg.Group("/invoices")
	invoices.POST("/calculate", h.calculateInvoice)
}

// calculateInvoice godoc
// @Summary Total an invoice
// @Description Prices each item, sums subtotal and VAT, and reports the balance due
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   request body dto.CalculateInvoiceRequest true "Invoice items"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /invoices/calculate [post]
func (h *invoiceHandler) calculateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateInvoiceRequest
	if !bindJSON(c, logger, &req, "CalculateInvoice") {
		return
	}

	invoice, err := h.invoiceService.CalculateInvoice(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to calculate invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, h.now()))
}
