package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/core/fiscal"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/SscSPs/compta_maroc/internal/middleware"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// vatHandler handles HTTP requests for the VAT engine.
type vatHandler struct {
	vatService portssvc.VatSvc
}

func newVatHandler(vs portssvc.VatSvc) *vatHandler {
	return &vatHandler{vatService: vs}
}

// RegisterVatRoutes registers routes related to VAT.
func RegisterVatRoutes(rg *gin.RouterGroup, vatService portssvc.VatSvc) {
	h := newVatHandler(vatService)

	vat := rg.Group("/vat")
	{
		vat.POST("/calculate", h.calculateVat)
		vat.POST("/calculate-simple", h.calculateSimpleVat)
		vat.POST("/reverse", h.reverseVat)
		vat.POST("/quarterly-return", h.quarterlyReturn)
		vat.GET("/exemption-check", h.exemptionCheck)
		vat.GET("/rates", h.listRates)
	}
}

// calculateVat godoc
// @Summary Calculate VAT for a product
// @Description Classifies the product type into a VAT rate and computes VAT on the base amount
// @Tags vat
// @Accept  json
// @Produce  json
// @Param   request body dto.CalculateVatRequest true "Amount and product classification"
// @Success 200 {object} dto.VatCalculationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /vat/calculate [post]
func (h *vatHandler) calculateVat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateVatRequest
	if !bindJSON(c, logger, &req, "CalculateVat") {
		return
	}

	result, err := h.vatService.CalculateVat(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to calculate VAT")
		return
	}

	c.JSON(http.StatusOK, dto.ToVatCalculationResponse(result))
}

// calculateSimpleVat godoc
// @Summary Calculate VAT for an explicit VAT type
// @Tags vat
// @Accept  json
// @Produce  json
// @Param   request body dto.CalculateSimpleVatRequest true "Amount and VAT type"
// @Success 200 {object} dto.VatCalculationResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown VAT type"
// @Security BearerAuth
// @Router /vat/calculate-simple [post]
func (h *vatHandler) calculateSimpleVat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateSimpleVatRequest
	if !bindJSON(c, logger, &req, "CalculateSimpleVat") {
		return
	}

	result, err := h.vatService.CalculateSimpleVat(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to calculate VAT")
		return
	}

	c.JSON(http.StatusOK, dto.ToVatCalculationResponse(result))
}

// reverseVat godoc
// @Summary Split a VAT-inclusive total
// @Description Derives the base amount and VAT from a total that already includes VAT
// @Tags vat
// @Accept  json
// @Produce  json
// @Param   request body dto.ReverseVatRequest true "Total and rate"
// @Success 200 {object} dto.ReverseVatResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /vat/reverse [post]
func (h *vatHandler) reverseVat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReverseVatRequest
	if !bindJSON(c, logger, &req, "ReverseVat") {
		return
	}

	result, err := h.vatService.ReverseVat(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reverse VAT")
		return
	}

	c.JSON(http.StatusOK, dto.ToReverseVatResponse(result))
}

// quarterlyReturn godoc
// @Summary Compute a quarterly VAT return
// @Description Nets collected VAT against deductible VAT and reports payment or refund due
// @Tags vat
// @Accept  json
// @Produce  json
// @Param   request body dto.QuarterlyReturnRequest true "Collected and deductible VAT"
// @Success 200 {object} dto.QuarterlyReturnResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /vat/quarterly-return [post]
func (h *vatHandler) quarterlyReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.QuarterlyReturnRequest
	if !bindJSON(c, logger, &req, "QuarterlyReturn") {
		return
	}

	result, err := h.vatService.QuarterlyReturn(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute quarterly return")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuarterlyReturnResponse(result))
}

// exemptionCheck godoc
// @Summary Check VAT exemption
// @Description Reports whether an annual turnover falls under the VAT exemption threshold
// @Tags vat
// @Produce  json
// @Param   annualTurnover query string true "Annual turnover in MAD"
// @Success 200 {object} dto.ExemptionCheckResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /vat/exemption-check [get]
func (h *vatHandler) exemptionCheck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ExemptionCheckParams
	if !bindQuery(c, logger, &params, "ExemptionCheck") {
		return
	}

	turnover, err := decimal.NewFromString(params.AnnualTurnover)
	if err != nil {
		logger.Warn("Invalid annual turnover", slog.String("annual_turnover", params.AnnualTurnover))
		c.JSON(http.StatusBadRequest, gin.H{"error": "annualTurnover must be a decimal number"})
		return
	}

	exempt, err := h.vatService.IsVatExempt(c.Request.Context(), turnover)
	if err != nil {
		respondWithError(c, logger, err, "Failed to check VAT exemption")
		return
	}

	c.JSON(http.StatusOK, dto.ExemptionCheckResponse{
		AnnualTurnover: money.Format(turnover),
		Threshold:      money.Format(fiscal.VatExemptionThreshold),
		IsExempt:       exempt,
	})
}

// listRates godoc
// @Summary List VAT rates
// @Tags vat
// @Produce  json
// @Success 200 {array} dto.VatRateResponse
// @Security BearerAuth
// @Router /vat/rates [get]
func (h *vatHandler) listRates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToVatRateResponses(h.vatService.RateTable(c.Request.Context())))
}
