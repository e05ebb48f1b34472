package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/core/services"
	"github.com/karyabangun/bizadmin/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	authorizer  *MockAuthorizer
	projectRepo *MockProjectRepository
	repo        *MockTransactionRepository
	service     portssvc.TransactionSvcFacade
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.authorizer = new(MockAuthorizer)
	s.projectRepo = new(MockProjectRepository)
	s.repo = new(MockTransactionRepository)
	s.service = services.NewTransactionService(s.repo, s.projectRepo, services.WithCompanyAuthorizer(s.authorizer))
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.authorizer.AssertExpectations(s.T())
	s.projectRepo.AssertExpectations(s.T())
	s.repo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) allow(role domain.CompanyRole) {
	s.authorizer.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, role).Return(nil).Once()
	s.projectRepo.On("FindProjectByID", mock.Anything, testCompanyID, testProjectID).
		Return(&domain.Project{ProjectID: testProjectID, CompanyID: testCompanyID}, nil).Once()
}

func (s *TransactionServiceTestSuite) TestCreateTransaction() {
	s.allow(domain.RoleMember)
	s.repo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.ProjectID == testProjectID && t.Type == domain.TransactionExpense && t.Amount.Equal(dec("1500000"))
	})).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		TransactionDate: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		Type:            domain.TransactionExpense,
		Category:        domain.CategoryMaterial,
		Amount:          dec("1500000"),
		Description:     "Semen 30 sak",
	}
	txn, err := s.service.CreateTransaction(context.Background(), testCompanyID, testProjectID, req, testUserID)
	s.Require().NoError(err)
	s.NotEmpty(txn.TransactionID)
	s.True(dec("-1500000").Equal(txn.SignedAmount()))
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	s.allow(domain.RoleMember)
	req := dto.CreateTransactionRequest{
		TransactionDate: time.Now(),
		Type:            domain.TransactionIncome,
		Category:        domain.CategoryProgressPayment,
		Amount:          dec("0"),
	}
	_, err := s.service.CreateTransaction(context.Background(), testCompanyID, testProjectID, req, testUserID)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction() {
	s.allow(domain.RoleMember)
	stored := &domain.Transaction{
		TransactionID: "tx-1",
		ProjectID:     testProjectID,
		Type:          domain.TransactionExpense,
		Category:      domain.CategoryLabour,
		Amount:        dec("750000"),
	}
	s.repo.On("FindTransactionByID", mock.Anything, testProjectID, "tx-1").Return(stored, nil).Once()
	s.repo.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Amount.Equal(dec("800000")) && t.Category == domain.CategoryLabour && t.LastUpdatedBy == testUserID
	})).Return(nil).Once()

	amount := dec("800000")
	txn, err := s.service.UpdateTransaction(context.Background(), testCompanyID, testProjectID, "tx-1",
		dto.UpdateTransactionRequest{Amount: &amount}, testUserID)
	s.Require().NoError(err)
	s.True(amount.Equal(txn.Amount))
}

func (s *TransactionServiceTestSuite) TestListTransactions_InvertedRange() {
	s.allow(domain.RoleReadOnly)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := s.service.ListTransactions(context.Background(), testCompanyID, testProjectID, testUserID,
		dto.ListTransactionsParams{Limit: 20, From: &from, To: &to})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestListTransactions_PassesFilter() {
	s.allow(domain.RoleReadOnly)
	expense := "PENGELUARAN"
	s.repo.On("ListTransactionsByProject", mock.Anything, testProjectID,
		mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.Type != nil && *f.Type == domain.TransactionExpense && f.Category == nil
		}), 50, (*string)(nil)).
		Return([]domain.Transaction{{TransactionID: "tx-1"}}, nil, nil).Once()

	resp, err := s.service.ListTransactions(context.Background(), testCompanyID, testProjectID, testUserID,
		dto.ListTransactionsParams{Limit: 50, Type: &expense})
	s.Require().NoError(err)
	s.Len(resp.Transactions, 1)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	s.allow(domain.RoleMember)
	s.repo.On("DeleteTransaction", mock.Anything, testProjectID, "missing").Return(apperrors.ErrNotFound).Once()

	err := s.service.DeleteTransaction(context.Background(), testCompanyID, testProjectID, "missing", testUserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_OtherCompanyProject() {
	s.authorizer.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, domain.RoleReadOnly).Return(nil).Once()
	s.projectRepo.On("FindProjectByID", mock.Anything, testCompanyID, "foreign").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetTransaction(context.Background(), testCompanyID, "foreign", "tx-1", testUserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
