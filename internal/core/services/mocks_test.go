package services_test

import (
	"context"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock authorizer ---

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error {
	args := m.Called(ctx, userID, companyID, requiredRole)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock CompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company, admin domain.CompanyMember) error {
	return m.Called(ctx, company, admin).Error(0)
}

func (m *MockCompanyRepository) AddUserToCompany(ctx context.Context, member domain.CompanyMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockCompanyRepository) FindUserCompanyRole(ctx context.Context, userID, companyID string) (*domain.CompanyMember, error) {
	args := m.Called(ctx, userID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyMember), args.Error(1)
}

func (m *MockCompanyRepository) ListUsersByCompanyID(ctx context.Context, companyID string) ([]domain.CompanyMember, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyMember), args.Error(1)
}

// --- Mock ProjectRepository ---

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, companyID, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, companyID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByCompany(ctx context.Context, companyID string, status *domain.ProjectStatus, limit int, nextToken *string) ([]domain.Project, *string, error) {
	args := m.Called(ctx, companyID, status, limit, nextToken)
	var projects []domain.Project
	if args.Get(0) != nil {
		projects = args.Get(0).([]domain.Project)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return projects, next, args.Error(2)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, companyID, projectID string) error {
	return m.Called(ctx, companyID, projectID).Error(0)
}

// --- Mock BillingRepository ---

type MockBillingRepository struct {
	mock.Mock
}

func (m *MockBillingRepository) FindBillingByID(ctx context.Context, projectID, billingID string) (*domain.Billing, error) {
	args := m.Called(ctx, projectID, billingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Billing), args.Error(1)
}

func (m *MockBillingRepository) ListBillingsByProject(ctx context.Context, projectID string) ([]domain.Billing, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Billing), args.Error(1)
}

func (m *MockBillingRepository) SaveBilling(ctx context.Context, billing domain.Billing) error {
	return m.Called(ctx, billing).Error(0)
}

func (m *MockBillingRepository) UpdateBilling(ctx context.Context, billing domain.Billing) error {
	return m.Called(ctx, billing).Error(0)
}

func (m *MockBillingRepository) UpdateBillingStatus(ctx context.Context, billing domain.Billing) error {
	return m.Called(ctx, billing).Error(0)
}

func (m *MockBillingRepository) DeleteBilling(ctx context.Context, projectID, billingID string) error {
	return m.Called(ctx, projectID, billingID).Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, projectID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, projectID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByProject(ctx context.Context, projectID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, projectID, filter, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return txns, next, args.Error(2)
}

func (m *MockTransactionRepository) ListAllTransactionsByProject(ctx context.Context, projectID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, projectID, transactionID string) error {
	return m.Called(ctx, projectID, transactionID).Error(0)
}

// --- Mock CashRequestRepository ---

type MockCashRequestRepository struct {
	mock.Mock
}

func (m *MockCashRequestRepository) FindCashRequestByID(ctx context.Context, projectID, cashRequestID string) (*domain.CashRequest, error) {
	args := m.Called(ctx, projectID, cashRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRequest), args.Error(1)
}

func (m *MockCashRequestRepository) ListCashRequestsByProject(ctx context.Context, projectID string, status *domain.CashRequestStatus, limit int, nextToken *string) ([]domain.CashRequest, *string, error) {
	args := m.Called(ctx, projectID, status, limit, nextToken)
	var list []domain.CashRequest
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.CashRequest)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return list, next, args.Error(2)
}

func (m *MockCashRequestRepository) ListAllCashRequestsByProject(ctx context.Context, projectID string) ([]domain.CashRequest, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashRequest), args.Error(1)
}

func (m *MockCashRequestRepository) SaveCashRequest(ctx context.Context, cashRequest domain.CashRequest, history domain.CashRequestHistory) error {
	return m.Called(ctx, cashRequest, history).Error(0)
}

func (m *MockCashRequestRepository) UpdateCashRequest(ctx context.Context, cashRequest domain.CashRequest, history domain.CashRequestHistory) error {
	return m.Called(ctx, cashRequest, history).Error(0)
}

func (m *MockCashRequestRepository) UpdateCashRequestStatus(ctx context.Context, cashRequest domain.CashRequest, history domain.CashRequestHistory) error {
	return m.Called(ctx, cashRequest, history).Error(0)
}

func (m *MockCashRequestRepository) DeleteCashRequest(ctx context.Context, projectID, cashRequestID string) error {
	return m.Called(ctx, projectID, cashRequestID).Error(0)
}
