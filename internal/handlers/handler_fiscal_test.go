package handlers_test

import (
	"net/http"

	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/gin-gonic/gin"
)

func (suite *HandlerTestSuite) TestCalculateVat_ClassifiesProduct() {
	w := suite.do(http.MethodPost, "/api/v1/vat/calculate", gin.H{"amount": "1000.00", "productType": "medicine"})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.VatCalculationResponse
	suite.decode(w, &resp)
	suite.Equal("REDUCED_3", resp.VatType)
	suite.Equal("7.00", resp.VatRate)
	suite.Equal("70.00", resp.VatAmount)
	suite.Equal("1070.00", resp.TotalAmount)
}

func (suite *HandlerTestSuite) TestCalculateVat_NegativeAmountRejected() {
	w := suite.do(http.MethodPost, "/api/v1/vat/calculate", gin.H{"amount": "-1", "productType": "books"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCalculateSimpleVat_UnknownTypeRejected() {
	w := suite.do(http.MethodPost, "/api/v1/vat/calculate-simple", gin.H{"amount": "100", "vatType": "LUXURY_PLUS"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCalculateSimpleVat_Standard() {
	w := suite.do(http.MethodPost, "/api/v1/vat/calculate-simple", gin.H{"amount": "100", "vatType": "standard"})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.VatCalculationResponse
	suite.decode(w, &resp)
	suite.Equal("20.00", resp.VatAmount)
	suite.Equal("120.00", resp.TotalAmount)
}

func (suite *HandlerTestSuite) TestReverseVat() {
	w := suite.do(http.MethodPost, "/api/v1/vat/reverse", gin.H{"totalAmount": "1200.00", "vatRate": "20"})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ReverseVatResponse
	suite.decode(w, &resp)
	suite.Equal("1000.00", resp.BaseAmount)
	suite.Equal("200.00", resp.VatAmount)
}

func (suite *HandlerTestSuite) TestQuarterlyReturn_Refund() {
	w := suite.do(http.MethodPost, "/api/v1/vat/quarterly-return", gin.H{"salesVat": "1000", "purchaseVat": "1500"})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.QuarterlyReturnResponse
	suite.decode(w, &resp)
	suite.True(resp.IsRefund)
	suite.Equal("500.00", resp.RefundDue)
	suite.Equal("0.00", resp.PaymentDue)
}

func (suite *HandlerTestSuite) TestExemptionCheck_ThresholdIsNotExempt() {
	w := suite.do(http.MethodGet, "/api/v1/vat/exemption-check?annualTurnover=500000", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ExemptionCheckResponse
	suite.decode(w, &resp)
	suite.False(resp.IsExempt)
	suite.Equal("500000.00", resp.Threshold)

	w = suite.do(http.MethodGet, "/api/v1/vat/exemption-check?annualTurnover=499999.99", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.decode(w, &resp)
	suite.True(resp.IsExempt)
}

func (suite *HandlerTestSuite) TestExemptionCheck_MissingTurnover() {
	w := suite.do(http.MethodGet, "/api/v1/vat/exemption-check", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListRates() {
	w := suite.do(http.MethodGet, "/api/v1/vat/rates", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []dto.VatRateResponse
	suite.decode(w, &resp)
	suite.Len(resp, 7)
	suite.Equal("STANDARD", resp[0].VatType)
	suite.Equal("20.00", resp[0].RatePercentage)
}

func (suite *HandlerTestSuite) TestCalculatePayroll() {
	w := suite.do(http.MethodPost, "/api/v1/payroll/calculate", gin.H{"grossSalary": "10000.00"})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.PayrollResponse
	suite.decode(w, &resp)
	suite.Equal("448.00", resp.CnssEmployee)
	suite.Equal("226.00", resp.AmoEmployee)
	suite.Equal("1737.60", resp.IncomeTax)
	suite.Equal("7588.40", resp.NetSalary)
	suite.Equal("12254.00", resp.TotalEmployerCost)
}

func (suite *HandlerTestSuite) TestRunPayroll_SkipsInactive() {
	w := suite.do(http.MethodPost, "/api/v1/payroll/run", gin.H{"employees": []gin.H{
		{"employeeID": "e1", "baseSalary": "10000.00", "status": "ACTIVE"},
		{"employeeID": "e2", "baseSalary": "8000.00", "status": "TERMINATED"},
	}})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.PayrollRunResponse
	suite.decode(w, &resp)
	suite.Len(resp.Payslips, 1)
	suite.Equal([]string{"e2"}, resp.Skipped)
	suite.Equal("10000.00", resp.TotalGross)
}

func (suite *HandlerTestSuite) TestRunPayroll_UnknownStatusRejected() {
	w := suite.do(http.MethodPost, "/api/v1/payroll/run", gin.H{"employees": []gin.H{
		{"employeeID": "e1", "baseSalary": "10000.00", "status": "RETIRED"},
	}})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCalculateInvoice() {
	w := suite.do(http.MethodPost, "/api/v1/invoices/calculate", gin.H{
		"invoiceNumber": "INV-001",
		"paidAmount":    "100.00",
		"items": []gin.H{
			{"description": "Consulting", "quantity": "2", "unitPrice": "500.00"},
			{"description": "Manual", "quantity": "1", "unitPrice": "100.00", "vatType": "REDUCED_3"},
		},
	})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.InvoiceResponse
	suite.decode(w, &resp)
	suite.Equal("1100.00", resp.Subtotal)
	suite.Equal("207.00", resp.VatAmount)
	suite.Equal("1307.00", resp.TotalAmount)
	suite.Equal("1207.00", resp.BalanceDue)
	suite.False(resp.IsFullyPaid)
}

func (suite *HandlerTestSuite) TestCalculateInvoice_NoItemsRejected() {
	w := suite.do(http.MethodPost, "/api/v1/invoices/calculate", gin.H{"items": []gin.H{}})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGenerateRecommendations() {
	w := suite.do(http.MethodPost, "/api/v1/recommendations", gin.H{
		"financial": gin.H{"revenue": "100000", "expenses": "50000", "profit": "50000", "cashFlow": "-1000", "annualRevenue": "100000"},
		"invoices":  gin.H{"overdueAmount": "0", "averagePaymentDays": 30, "totalInvoices": 10},
		"inventory": gin.H{"lowStockItems": 0, "slowMovingValue": "0", "totalItems": 5},
	})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.RecommendationsResponse
	suite.decode(w, &resp)
	suite.Require().Equal(1, resp.Count)
	suite.Equal("CASH_FLOW", string(resp.Recommendations[0].Type))
	suite.Equal("HIGH", string(resp.Recommendations[0].Priority))
}
