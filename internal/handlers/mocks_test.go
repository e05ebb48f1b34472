package handlers_test

import (
	"context"
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

type MockUserService struct{ mock.Mock }

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserService) CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string, emailVerified bool) (*domain.User, error) {
	args := m.Called(ctx, name, email, provider, providerUserID, emailVerified)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type MockTokenService struct{ mock.Mock }

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type MockGoogleOAuthService struct{ mock.Mock }

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuthService)(nil)

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	t, _ := args.Get(0).(*oauth2.Token)
	return t, args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	p, _ := args.Get(0).(*idtoken.Payload)
	return p, args.Error(1)
}

type MockCompanyService struct{ mock.Mock }

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

func (m *MockCompanyService) GetCompanyByID(ctx context.Context, companyID, requestingUserID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID, requestingUserID)
	c, _ := args.Get(0).(*domain.Company)
	return c, args.Error(1)
}

func (m *MockCompanyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	cs, _ := args.Get(0).([]domain.Company)
	return cs, args.Error(1)
}

func (m *MockCompanyService) ListCompanyMembers(ctx context.Context, companyID, requestingUserID string) ([]domain.CompanyMember, error) {
	args := m.Called(ctx, companyID, requestingUserID)
	ms, _ := args.Get(0).([]domain.CompanyMember)
	return ms, args.Error(1)
}

func (m *MockCompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	args := m.Called(ctx, req, creatorUserID)
	c, _ := args.Get(0).(*domain.Company)
	return c, args.Error(1)
}

func (m *MockCompanyService) AddUserToCompany(ctx context.Context, addingUserID, companyID string, req dto.AddCompanyMemberRequest) (*domain.CompanyMember, error) {
	args := m.Called(ctx, addingUserID, companyID, req)
	mem, _ := args.Get(0).(*domain.CompanyMember)
	return mem, args.Error(1)
}

func (m *MockCompanyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error {
	return m.Called(ctx, userID, companyID, requiredRole).Error(0)
}

type MockProjectService struct{ mock.Mock }

var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

func (m *MockProjectService) GetProject(ctx context.Context, companyID, projectID, userID string) (*domain.Project, error) {
	args := m.Called(ctx, companyID, projectID, userID)
	p, _ := args.Get(0).(*domain.Project)
	return p, args.Error(1)
}

func (m *MockProjectService) ListProjects(ctx context.Context, companyID, userID string, params dto.ListProjectsParams) (*dto.ListProjectsResponse, error) {
	args := m.Called(ctx, companyID, userID, params)
	r, _ := args.Get(0).(*dto.ListProjectsResponse)
	return r, args.Error(1)
}

func (m *MockProjectService) GetProjectSummary(ctx context.Context, companyID, projectID, userID string) (*domain.ProjectSummary, error) {
	args := m.Called(ctx, companyID, projectID, userID)
	s, _ := args.Get(0).(*domain.ProjectSummary)
	return s, args.Error(1)
}

func (m *MockProjectService) CreateProject(ctx context.Context, companyID string, req dto.CreateProjectRequest, userID string) (*domain.Project, error) {
	args := m.Called(ctx, companyID, req, userID)
	p, _ := args.Get(0).(*domain.Project)
	return p, args.Error(1)
}

func (m *MockProjectService) UpdateProject(ctx context.Context, companyID, projectID string, req dto.UpdateProjectRequest, userID string) (*domain.Project, error) {
	args := m.Called(ctx, companyID, projectID, req, userID)
	p, _ := args.Get(0).(*domain.Project)
	return p, args.Error(1)
}

func (m *MockProjectService) DeleteProject(ctx context.Context, companyID, projectID, userID string) error {
	return m.Called(ctx, companyID, projectID, userID).Error(0)
}

type MockBillingService struct{ mock.Mock }

var _ portssvc.BillingSvcFacade = (*MockBillingService)(nil)

func (m *MockBillingService) CalculateBilling(ctx context.Context, companyID, userID string, billingValue, downPaymentDeduction decimal.Decimal) (*domain.BillingAmounts, error) {
	args := m.Called(ctx, companyID, userID, billingValue, downPaymentDeduction)
	a, _ := args.Get(0).(*domain.BillingAmounts)
	return a, args.Error(1)
}

func (m *MockBillingService) GetBilling(ctx context.Context, companyID, projectID, billingID, userID string) (*domain.Billing, error) {
	args := m.Called(ctx, companyID, projectID, billingID, userID)
	b, _ := args.Get(0).(*domain.Billing)
	return b, args.Error(1)
}

func (m *MockBillingService) ListBillings(ctx context.Context, companyID, projectID, userID string) ([]domain.Billing, error) {
	args := m.Called(ctx, companyID, projectID, userID)
	bs, _ := args.Get(0).([]domain.Billing)
	return bs, args.Error(1)
}

func (m *MockBillingService) CreateBilling(ctx context.Context, companyID, projectID string, req dto.CreateBillingRequest, userID string) (*domain.Billing, error) {
	args := m.Called(ctx, companyID, projectID, req, userID)
	b, _ := args.Get(0).(*domain.Billing)
	return b, args.Error(1)
}

func (m *MockBillingService) UpdateBilling(ctx context.Context, companyID, projectID, billingID string, req dto.UpdateBillingRequest, userID string) (*domain.Billing, error) {
	args := m.Called(ctx, companyID, projectID, billingID, req, userID)
	b, _ := args.Get(0).(*domain.Billing)
	return b, args.Error(1)
}

func (m *MockBillingService) DeleteBilling(ctx context.Context, companyID, projectID, billingID, userID string) error {
	return m.Called(ctx, companyID, projectID, billingID, userID).Error(0)
}

func (m *MockBillingService) UpdateBillingStatus(ctx context.Context, companyID, projectID, billingID string, req dto.UpdateBillingStatusRequest, userID string) (*domain.Billing, *domain.TransitionDecision, error) {
	args := m.Called(ctx, companyID, projectID, billingID, req, userID)
	b, _ := args.Get(0).(*domain.Billing)
	d, _ := args.Get(1).(*domain.TransitionDecision)
	return b, d, args.Error(2)
}

type MockTransactionService struct{ mock.Mock }

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) GetTransaction(ctx context.Context, companyID, projectID, transactionID, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, projectID, transactionID, userID)
	t, _ := args.Get(0).(*domain.Transaction)
	return t, args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, companyID, projectID, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, companyID, projectID, userID, params)
	r, _ := args.Get(0).(*dto.ListTransactionsResponse)
	return r, args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, companyID, projectID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, projectID, req, userID)
	t, _ := args.Get(0).(*domain.Transaction)
	return t, args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, companyID, projectID, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, projectID, transactionID, req, userID)
	t, _ := args.Get(0).(*domain.Transaction)
	return t, args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, companyID, projectID, transactionID, userID string) error {
	return m.Called(ctx, companyID, projectID, transactionID, userID).Error(0)
}

type MockCashRequestService struct{ mock.Mock }

var _ portssvc.CashRequestSvcFacade = (*MockCashRequestService)(nil)

func (m *MockCashRequestService) GetCashRequest(ctx context.Context, companyID, projectID, cashRequestID, userID string) (*domain.CashRequest, error) {
	args := m.Called(ctx, companyID, projectID, cashRequestID, userID)
	cr, _ := args.Get(0).(*domain.CashRequest)
	return cr, args.Error(1)
}

func (m *MockCashRequestService) ListCashRequests(ctx context.Context, companyID, projectID, userID string, params dto.ListCashRequestsParams) (*dto.ListCashRequestsResponse, error) {
	args := m.Called(ctx, companyID, projectID, userID, params)
	r, _ := args.Get(0).(*dto.ListCashRequestsResponse)
	return r, args.Error(1)
}

func (m *MockCashRequestService) CreateCashRequest(ctx context.Context, companyID, projectID string, req dto.CreateCashRequestRequest, userID string) (*domain.CashRequest, error) {
	args := m.Called(ctx, companyID, projectID, req, userID)
	cr, _ := args.Get(0).(*domain.CashRequest)
	return cr, args.Error(1)
}

func (m *MockCashRequestService) UpdateCashRequest(ctx context.Context, companyID, projectID, cashRequestID string, req dto.UpdateCashRequestRequest, userID string) (*domain.CashRequest, error) {
	args := m.Called(ctx, companyID, projectID, cashRequestID, req, userID)
	cr, _ := args.Get(0).(*domain.CashRequest)
	return cr, args.Error(1)
}

func (m *MockCashRequestService) DeleteCashRequest(ctx context.Context, companyID, projectID, cashRequestID, userID string) error {
	return m.Called(ctx, companyID, projectID, cashRequestID, userID).Error(0)
}

func (m *MockCashRequestService) DecideCashRequest(ctx context.Context, companyID, projectID, cashRequestID string, req dto.DecideCashRequestRequest, userID string) (*domain.CashRequest, error) {
	args := m.Called(ctx, companyID, projectID, cashRequestID, req, userID)
	cr, _ := args.Get(0).(*domain.CashRequest)
	return cr, args.Error(1)
}
