package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/SscSPs/compta_maroc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// payrollHandler handles HTTP requests for the payroll engine.
type payrollHandler struct {
	payrollService portssvc.PayrollSvc
}

func newPayrollHandler(ps portssvc.PayrollSvc) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

// RegisterPayrollRoutes registers routes related to payroll.
func RegisterPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvc) {
	h := newPayrollHandler(payrollService)

	payroll := rg.Group("/payroll")
	{
		payroll.POST("/calculate", h.calculatePayroll)
		payroll.POST("/run", h.runPayroll)
	}
}

// calculatePayroll godoc
// @Summary Calculate a monthly payroll
// @Description Computes social contributions, income tax, net salary and employer cost for one gross salary
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   request body dto.CalculatePayrollRequest true "Gross salary"
// @Success 200 {object} dto.PayrollResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payroll/calculate [post]
func (h *payrollHandler) calculatePayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculatePayrollRequest
	if !bindJSON(c, logger, &req, "CalculatePayroll") {
		return
	}

	result, err := h.payrollService.CalculatePayroll(c.Request.Context(), req.GrossSalary)
	if err != nil {
		respondWithError(c, logger, err, "Failed to calculate payroll")
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollResponse(result))
}

// runPayroll godoc
// @Summary Run payroll for a period
// @Description Computes payslips for every active or on-leave employee and the period totals
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   request body dto.PayrollRunRequest true "Employees"
// @Success 200 {object} dto.PayrollRunResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payroll/run [post]
func (h *payrollHandler) runPayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PayrollRunRequest
	if !bindJSON(c, logger, &req, "RunPayroll") {
		return
	}

	logger.Info("Received payroll run", slog.Int("employees", len(req.Employees)))
	run, err := h.payrollService.RunPayroll(c.Request.Context(), req.ToPayrollEmployees())
	if err != nil {
		respondWithError(c, logger, err, "Failed to run payroll")
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollRunResponse(run))
}
