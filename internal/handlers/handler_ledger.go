package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/SscSPs/compta_maroc/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

// RegisterLedgerRoutes registers the ledger balance routes.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := &ledgerHandler{ledgerService: ledgerService}
	rg.GET("/ledger/balances", h.getBalances)
}

// getBalances godoc
// @Summary Get account balances
// @Description Folds POSTED lines dated within the optional range into signed balances per account
// @Tags ledger
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Security BearerAuth
// @Router /ledger/balances [get]
func (h *ledgerHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.LedgerBalancesParams
	if !bindQuery(c, logger, &params, "GetBalances") {
		return
	}

	balances, err := h.ledgerService.GetAccountBalances(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute account balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountBalanceResponses(balances))
}
