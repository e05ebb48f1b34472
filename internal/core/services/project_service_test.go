package services_test

import (
	"context"
	"errors"
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

type ProjectServiceTestSuite struct {
	suite.Suite
	authorizer      *MockAuthorizer
	projectRepo     *MockProjectRepository
	billingRepo     *MockBillingRepository
	transactionRepo *MockTransactionRepository
	cashRequestRepo *MockCashRequestRepository
	service         portssvc.ProjectSvcFacade
	now             time.Time
}

func (s *ProjectServiceTestSuite) SetupTest() {
	s.authorizer = new(MockAuthorizer)
	s.projectRepo = new(MockProjectRepository)
	s.billingRepo = new(MockBillingRepository)
	s.transactionRepo = new(MockTransactionRepository)
	s.cashRequestRepo = new(MockCashRequestRepository)
	s.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.service = services.NewProjectService(s.projectRepo, s.billingRepo, s.transactionRepo, s.cashRequestRepo,
		services.WithCompanyAuthorizer(s.authorizer),
		services.WithClock(func() time.Time { return s.now }))
}

func (s *ProjectServiceTestSuite) TearDownTest() {
	s.authorizer.AssertExpectations(s.T())
	s.projectRepo.AssertExpectations(s.T())
	s.billingRepo.AssertExpectations(s.T())
	s.transactionRepo.AssertExpectations(s.T())
	s.cashRequestRepo.AssertExpectations(s.T())
}

func (s *ProjectServiceTestSuite) allow(role domain.CompanyRole) {
	s.authorizer.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, role).Return(nil).Once()
}

func (s *ProjectServiceTestSuite) project() *domain.Project {
	return &domain.Project{
		ProjectID:     testProjectID,
		CompanyID:     testCompanyID,
		Code:          "PRJ-001",
		Name:          "Gedung Kantor Bekasi",
		ContractValue: dec("2000000000"),
		DownPayment:   dec("200000000"),
		StartDate:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Status:        domain.ProjectActive,
	}
}

func (s *ProjectServiceTestSuite) TestCreateProject_DefaultsToActive() {
	s.allow(domain.RoleMember)
	s.projectRepo.On("SaveProject", mock.Anything, mock.MatchedBy(func(p domain.Project) bool {
		return p.Status == domain.ProjectActive && p.CompanyID == testCompanyID && p.CreatedBy == testUserID && p.CreatedAt.Equal(s.now)
	})).Return(nil).Once()

	req := dto.CreateProjectRequest{
		Code:          "PRJ-001",
		Name:          "Gedung Kantor Bekasi",
		ContractValue: dec("2000000000"),
		DownPayment:   dec("200000000"),
		StartDate:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	project, err := s.service.CreateProject(context.Background(), testCompanyID, req, testUserID)
	s.Require().NoError(err)
	s.NotEmpty(project.ProjectID)
	s.Equal(domain.ProjectActive, project.Status)
}

func (s *ProjectServiceTestSuite) TestCreateProject_Validation() {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)

	cases := map[string]dto.CreateProjectRequest{
		"negative contract":      {Code: "A", Name: "A", ContractValue: dec("-1"), StartDate: start},
		"down payment too large": {Code: "A", Name: "A", ContractValue: dec("100"), DownPayment: dec("101"), StartDate: start},
		"end before start":       {Code: "A", Name: "A", StartDate: start, EndDate: &before},
		"unknown status":         {Code: "A", Name: "A", StartDate: start, Status: "DONE"},
	}
	for name, req := range cases {
		s.Run(name, func() {
			s.allow(domain.RoleMember)
			_, err := s.service.CreateProject(context.Background(), testCompanyID, req, testUserID)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	s.projectRepo.AssertNotCalled(s.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (s *ProjectServiceTestSuite) TestUpdateProject_PartialFields() {
	s.allow(domain.RoleMember)
	s.projectRepo.On("FindProjectByID", mock.Anything, testCompanyID, testProjectID).Return(s.project(), nil).Once()
	s.projectRepo.On("UpdateProject", mock.Anything, mock.MatchedBy(func(p domain.Project) bool {
		return p.Status == domain.ProjectCompleted && p.Name == "Gedung Kantor Bekasi" && p.LastUpdatedAt.Equal(s.now)
	})).Return(nil).Once()

	completed := domain.ProjectCompleted
	project, err := s.service.UpdateProject(context.Background(), testCompanyID, testProjectID,
		dto.UpdateProjectRequest{Status: &completed}, testUserID)
	s.Require().NoError(err)
	s.Equal(domain.ProjectCompleted, project.Status)
}

func (s *ProjectServiceTestSuite) TestListProjects() {
	s.allow(domain.RoleReadOnly)
	s.projectRepo.On("ListProjectsByCompany", mock.Anything, testCompanyID, (*domain.ProjectStatus)(nil), 20, (*string)(nil)).
		Return(nil, nil, nil).Once()

	resp, err := s.service.ListProjects(context.Background(), testCompanyID, testUserID, dto.ListProjectsParams{Limit: 20})
	s.Require().NoError(err)
	s.NotNil(resp.Projects)
	s.Empty(resp.Projects)
	s.Nil(resp.NextToken)
}

func (s *ProjectServiceTestSuite) TestListProjects_NotMember() {
	s.authorizer.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, domain.RoleReadOnly).
		Return(apperrors.ErrNotFound).Once()

	_, err := s.service.ListProjects(context.Background(), testCompanyID, testUserID, dto.ListProjectsParams{Limit: 20})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ProjectServiceTestSuite) TestGetProjectSummary() {
	s.allow(domain.RoleReadOnly)
	s.projectRepo.On("FindProjectByID", mock.Anything, testCompanyID, testProjectID).Return(s.project(), nil).Once()

	billings := []domain.Billing{
		{BillingValue: dec("500000000"), Retention: dec("25000000"), NetReceivable: dec("433400000"), Status: domain.BillingPaid},
		{BillingValue: dec("300000000"), Retention: dec("15000000"), NetReceivable: dec("260000000"), Status: domain.BillingPaidRetentionHeld},
		{BillingValue: dec("200000000"), Retention: dec("10000000"), NetReceivable: dec("170000000"), Status: domain.BillingUnpaid},
	}
	txns := []domain.Transaction{
		{Type: domain.TransactionIncome, Amount: dec("433400000")},
		{Type: domain.TransactionExpense, Amount: dec("120000000")},
		{Type: domain.TransactionExpense, Amount: dec("30000000")},
	}
	requests := []domain.CashRequest{
		{Status: domain.CashRequestPending, TotalAmount: dec("5000000")},
		{Status: domain.CashRequestApproved, TotalAmount: dec("9000000")},
		{Status: domain.CashRequestPending, TotalAmount: dec("2500000")},
	}
	s.billingRepo.On("ListBillingsByProject", mock.Anything, testProjectID).Return(billings, nil).Once()
	s.transactionRepo.On("ListAllTransactionsByProject", mock.Anything, testProjectID).Return(txns, nil).Once()
	s.cashRequestRepo.On("ListAllCashRequestsByProject", mock.Anything, testProjectID).Return(requests, nil).Once()

	summary, err := s.service.GetProjectSummary(context.Background(), testCompanyID, testProjectID, testUserID)
	s.Require().NoError(err)
	s.Equal(3, summary.BillingCount)
	s.True(dec("1000000000").Equal(summary.TotalBilled), summary.TotalBilled.String())
	s.True(dec("693400000").Equal(summary.TotalReceived), summary.TotalReceived.String())
	s.True(dec("15000000").Equal(summary.RetentionHeld), summary.RetentionHeld.String())
	s.True(dec("283400000").Equal(summary.CashBalance), summary.CashBalance.String())
	s.True(dec("7500000").Equal(summary.PendingCashRequests), summary.PendingCashRequests.String())
	s.True(dec("50").Equal(summary.ProgressPercent), summary.ProgressPercent.String())
}

func (s *ProjectServiceTestSuite) TestGetProjectSummary_ReaderError() {
	s.allow(domain.RoleReadOnly)
	s.projectRepo.On("FindProjectByID", mock.Anything, testCompanyID, testProjectID).Return(s.project(), nil).Once()
	s.billingRepo.On("ListBillingsByProject", mock.Anything, testProjectID).Return(nil, errors.New("db down")).Maybe()
	s.transactionRepo.On("ListAllTransactionsByProject", mock.Anything, testProjectID).Return([]domain.Transaction{}, nil).Maybe()
	s.cashRequestRepo.On("ListAllCashRequestsByProject", mock.Anything, testProjectID).Return([]domain.CashRequest{}, nil).Maybe()

	_, err := s.service.GetProjectSummary(context.Background(), testCompanyID, testProjectID, testUserID)
	s.ErrorContains(err, "db down")
}

func (s *ProjectServiceTestSuite) TestDeleteProject_RequiresAdmin() {
	s.authorizer.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, domain.RoleAdmin).
		Return(apperrors.ErrForbidden).Once()

	err := s.service.DeleteProject(context.Background(), testCompanyID, testProjectID, testUserID)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.projectRepo.AssertNotCalled(s.T(), "DeleteProject", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ProjectServiceTestSuite) TestDeleteProject() {
	s.allow(domain.RoleAdmin)
	s.projectRepo.On("DeleteProject", mock.Anything, testCompanyID, testProjectID).Return(nil).Once()

	s.NoError(s.service.DeleteProject(context.Background(), testCompanyID, testProjectID, testUserID))
}

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
