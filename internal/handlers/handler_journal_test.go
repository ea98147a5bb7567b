package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func draftEntry(entryID string) *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryID:     entryID,
		EntryNumber: "JE-20240315-ABCDEF12",
		EntryDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Office rent",
		EntryType:   domain.EntryPayments,
		Status:      domain.Draft,
		TotalAmount: decimal.NewFromInt(5000),
		Lines: []domain.JournalEntryLine{
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "6131", Debit: decimal.NewFromInt(5000), Credit: decimal.Zero, LineOrder: 0},
			{LineID: uuid.NewString(), EntryID: entryID, AccountCode: "5141", Debit: decimal.Zero, Credit: decimal.NewFromInt(5000), LineOrder: 1},
		},
	}
}

func (suite *HandlerTestSuite) TestCreateEntry_Success() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("CreateEntry",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateJournalEntryRequest) bool {
			return req.EntryType == "PAYMENTS" &&
				len(req.Lines) == 2 &&
				req.Lines[0].Debit.Equal(decimal.NewFromInt(5000)) &&
				req.Lines[1].Credit.Equal(decimal.NewFromInt(5000))
		}),
		suite.userID,
	).Return(draftEntry(entryID), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"entryDate":   "2024-03-15T00:00:00Z",
		"description": "Office rent",
		"entryType":   "PAYMENTS",
		"lines": []gin.H{
			{"accountCode": "6131", "debit": "5000"},
			{"accountCode": "5141", "credit": "5000"},
		},
	})

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.JournalEntryResponse
	suite.decode(w, &resp)
	suite.Equal(entryID, resp.EntryID)
	suite.Equal("DRAFT", resp.Status)
	suite.Equal("5000.00", resp.TotalAmount)
	suite.Len(resp.Lines, 2)
	suite.Equal("5000.00", resp.Lines[0].Debit)
	suite.Equal("0.00", resp.Lines[0].Credit)
}

func (suite *HandlerTestSuite) TestCreateEntry_UnknownEntryTypeRejected() {
	w := suite.do(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"entryDate":   "2024-03-15T00:00:00Z",
		"description": "Bogus",
		"entryType":   "PAYROLL",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateEntry_NegativeDebitRejected() {
	w := suite.do(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"entryDate":   "2024-03-15T00:00:00Z",
		"description": "Bad line",
		"entryType":   "ADJUSTMENTS",
		"lines":       []gin.H{{"accountCode": "6131", "debit": "-10"}},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateEntry_SubCentAmountRejected() {
	w := suite.do(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"entryDate":   "2024-03-15T00:00:00Z",
		"description": "Sub-cent lines",
		"entryType":   "ADJUSTMENTS",
		"lines": []gin.H{
			{"accountCode": "6131", "debit": "0.005"},
			{"accountCode": "6131", "debit": "0.005"},
			{"accountCode": "5141", "credit": "0.01"},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateEntry_UnknownAccount() {
	suite.mockJournalService.On("CreateEntry", mock.Anything, mock.Anything, suite.userID).
		Return(nil, fmt.Errorf("%w: account 9999 does not exist", apperrors.ErrInvalidInput)).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries", gin.H{
		"entryDate":   "2024-03-15T00:00:00Z",
		"description": "Unknown account",
		"entryType":   "ADJUSTMENTS",
		"lines":       []gin.H{{"accountCode": "9999", "debit": "10"}},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "9999")
}

func (suite *HandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("GetEntryByID", mock.Anything, entryID).
		Return(nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal-entries/"+entryID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListEntries_PassesFilters() {
	next := "token-2"
	suite.mockJournalService.On("ListEntries",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListJournalEntriesParams) bool {
			return p.Limit == 5 && p.Status == "POSTED" && p.NextToken == "token-1"
		}),
	).Return(&dto.ListJournalEntriesResponse{
		Entries:   []dto.JournalEntryResponse{dto.ToJournalEntryResponse(draftEntry(uuid.NewString()))},
		NextToken: &next,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal-entries?limit=5&status=POSTED&nextToken=token-1", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListJournalEntriesResponse
	suite.decode(w, &resp)
	suite.Len(resp.Entries, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListEntries_DefaultLimit() {
	suite.mockJournalService.On("ListEntries",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListJournalEntriesParams) bool { return p.Limit == 20 }),
	).Return(&dto.ListJournalEntriesResponse{Entries: []dto.JournalEntryResponse{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal-entries", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestListEntries_InvalidStatusRejected() {
	w := suite.do(http.MethodGet, "/api/v1/journal-entries?status=ARCHIVED", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAddLine_Success() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("AddLine",
		mock.Anything,
		entryID,
		mock.MatchedBy(func(req dto.JournalLineRequest) bool {
			return req.AccountCode == "4455" && req.Credit.Equal(decimal.RequireFromString("1000.50"))
		}),
		suite.userID,
	).Return(draftEntry(entryID), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries/"+entryID+"/lines", gin.H{"accountCode": "4455", "credit": "1000.50"})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestRemoveLine_NotDraft() {
	entryID, lineID := uuid.NewString(), uuid.NewString()
	suite.mockJournalService.On("RemoveLine", mock.Anything, entryID, lineID, suite.userID).
		Return(nil, fmt.Errorf("%w: entry is POSTED", apperrors.ErrIllegalTransition)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/journal-entries/"+entryID+"/lines/"+lineID, nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestPostEntry_Success() {
	entryID := uuid.NewString()
	posted := draftEntry(entryID)
	posted.Status = domain.Posted
	postedAt := time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)
	posted.PostedDate = &postedAt
	posted.PostedBy = suite.userID
	suite.mockJournalService.On("PostEntry", mock.Anything, entryID, suite.userID).Return(posted, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries/"+entryID+"/post", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.JournalEntryResponse
	suite.decode(w, &resp)
	suite.Equal("POSTED", resp.Status)
	suite.Equal(suite.userID, resp.PostedBy)
}

func (suite *HandlerTestSuite) TestPostEntry_Imbalanced() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("PostEntry", mock.Anything, entryID, suite.userID).
		Return(nil, fmt.Errorf("%w: debits 100.00 != credits 90.00", apperrors.ErrImbalancedEntry)).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries/"+entryID+"/post", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestCancelEntry_AlreadyPosted() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("CancelEntry", mock.Anything, entryID, suite.userID).
		Return(nil, fmt.Errorf("%w: entry is POSTED", apperrors.ErrIllegalTransition)).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries/"+entryID+"/cancel", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCancelEntry_RepositoryFailureHidden() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("CancelEntry", mock.Anything, entryID, suite.userID).
		Return(nil, errors.New("connection reset")).Once()

	w := suite.do(http.MethodPost, "/api/v1/journal-entries/"+entryID+"/cancel", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}
