package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/core/services"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	ctx      context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo, services.WithClock(fixedClock))
	suite.ctx = context.Background()
}

func existingChart() []domain.ChartOfAccountsEntry {
	return []domain.ChartOfAccountsEntry{
		{AccountCode: "5", AccountName: "Trésorerie", AccountType: domain.Asset, Category: domain.CashAndEquivalents, IsActive: true},
		{AccountCode: "7", AccountName: "Produits", AccountType: domain.Revenue, IsActive: true},
	}
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{
		AccountCode: "5141",
		AccountName: "Banques",
		AccountType: "ASSET",
		Category:    "CASH_AND_EQUIVALENTS",
		ParentCode:  "5",
		PCMNCode:    "5141",
	}

	suite.mockRepo.On("ListAllAccounts", suite.ctx).Return(existingChart(), nil).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.ChartOfAccountsEntry")).Return(nil).Once()

	created, err := suite.service.CreateAccount(suite.ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("5141", created.AccountCode)
	suite.Equal(domain.Asset, created.AccountType)
	suite.Equal(domain.CashAndEquivalents, created.Category)
	suite.Equal("5", created.ParentCode)
	suite.True(created.IsActive)
	suite.Equal("user-1", created.CreatedBy)
	suite.Equal(fixedNow, created.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownParent() {
	req := dto.CreateAccountRequest{AccountCode: "6111", AccountName: "Achats", AccountType: "EXPENSE", ParentCode: "6"}

	suite.mockRepo.On("ListAllAccounts", suite.ctx).Return(existingChart(), nil).Once()

	created, err := suite.service.CreateAccount(suite.ctx, req, "user-1")

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrInvalidInput)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	req := dto.CreateAccountRequest{AccountCode: "7", AccountName: "Produits bis", AccountType: "REVENUE"}

	suite.mockRepo.On("ListAllAccounts", suite.ctx).Return(existingChart(), nil).Once()

	_, err := suite.service.CreateAccount(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CategoryTypeMismatch() {
	req := dto.CreateAccountRequest{AccountCode: "4411", AccountName: "Fournisseurs", AccountType: "LIABILITY", Category: "CASH_AND_EQUIVALENTS"}

	suite.mockRepo.On("ListAllAccounts", suite.ctx).Return(existingChart(), nil).Once()

	_, err := suite.service.CreateAccount(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrInvalidInput)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	req := dto.CreateAccountRequest{AccountCode: "9", AccountName: "Unknown", AccountType: "PROFIT"}

	_, err := suite.service.CreateAccount(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrInvalidInput)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAllAccounts", mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	req := dto.CreateAccountRequest{AccountCode: "71", AccountName: "Ventes", AccountType: "REVENUE", ParentCode: "7"}
	saveErr := errors.New("db down")

	suite.mockRepo.On("ListAllAccounts", suite.ctx).Return(existingChart(), nil).Once()
	suite.mockRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.ChartOfAccountsEntry")).Return(saveErr).Once()

	created, err := suite.service.CreateAccount(suite.ctx, req, "user-1")

	suite.Nil(created)
	suite.ErrorIs(err, saveErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByCode_NotFound() {
	suite.mockRepo.On("FindAccountByCode", suite.ctx, "999").Return(nil, apperrors.ErrNotFound).Once()

	acc, err := suite.service.GetAccountByCode(suite.ctx, "999")

	suite.Nil(acc)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	suite.mockRepo.On("ListAccounts", suite.ctx, 50, 0).Return(existingChart(), nil).Once()

	accounts, err := suite.service.ListAccounts(suite.ctx, 50, 0)

	suite.Require().NoError(err)
	suite.Len(accounts, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
