package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	created := &domain.ChartOfAccountsEntry{
		AccountCode: "5141",
		AccountName: "Banque",
		AccountType: domain.Asset,
		Category:    domain.CashAndEquivalents,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(suite.userID, time.Now()),
	}
	suite.mockAccountService.On("CreateAccount",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool { return req.AccountCode == "5141" }),
		suite.userID,
	).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{
		"accountCode": "5141",
		"accountName": "Banque",
		"accountType": "ASSET",
		"category":    "CASH_AND_EQUIVALENTS",
	})

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.Equal("5141", resp.AccountCode)
	suite.Equal("ASSET", resp.AccountType)
	suite.Equal(suite.userID, resp.CreatedBy)
}

func (suite *HandlerTestSuite) TestCreateAccount_InvalidTypeRejected() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{
		"accountCode": "5141",
		"accountName": "Banque",
		"accountType": "CASH",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAccount_Duplicate() {
	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: account code 5141", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{
		"accountCode": "5141",
		"accountName": "Banque",
		"accountType": "ASSET",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByCode", mock.Anything, "9999").
		Return(nil, fmt.Errorf("%w: account 9999", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/9999", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListAccounts_Pagination() {
	suite.mockAccountService.On("ListAccounts", mock.Anything, 10, 20).
		Return([]domain.ChartOfAccountsEntry{{AccountCode: "1111", AccountType: domain.Equity}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts?limit=10&offset=20", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Accounts, 1)
}

func (suite *HandlerTestSuite) TestGetBalances_WithRange() {
	suite.mockLedgerService.On("GetAccountBalances",
		mock.Anything,
		mock.MatchedBy(func(from *time.Time) bool { return from != nil && from.Format("2006-01-02") == "2024-01-01" }),
		mock.MatchedBy(func(to *time.Time) bool { return to != nil && to.Format("2006-01-02") == "2024-03-31" }),
	).Return([]domain.AccountBalance{{
		AccountCode: "5141",
		AccountType: domain.Asset,
		DebitTotal:  decimal.NewFromInt(1000),
		CreditTotal: decimal.NewFromInt(250),
		Balance:     decimal.NewFromInt(750),
	}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/balances?from=2024-01-01&to=2024-03-31", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp []dto.AccountBalanceResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 1)
	suite.Equal("750.00", resp[0].Balance)
}

func (suite *HandlerTestSuite) TestGetBalances_OpenRange() {
	suite.mockLedgerService.On("GetAccountBalances", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.AccountBalance{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/balances", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *HandlerTestSuite) TestGetBalances_InvertedRange() {
	suite.mockLedgerService.On("GetAccountBalances", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: from is after to", apperrors.ErrInvalidInput)).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/balances?from=2024-04-01&to=2024-01-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetBalances_BadDate() {
	w := suite.do(http.MethodGet, "/api/v1/ledger/balances?from=01/04/2024", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}
