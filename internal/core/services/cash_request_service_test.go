package services_test

import (
	"context"
	"errors"
	"regexp"
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

type CashRequestServiceTestSuite struct {
	suite.Suite
	authorizer  *MockAuthorizer
	projectRepo *MockProjectRepository
	repo        *MockCashRequestRepository
	service     portssvc.CashRequestSvcFacade
	now         time.Time
}

func (s *CashRequestServiceTestSuite) SetupTest() {
	s.authorizer = new(MockAuthorizer)
	s.projectRepo = new(MockProjectRepository)
	s.repo = new(MockCashRequestRepository)
	s.now = time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC)
	s.service = services.NewCashRequestService(s.repo, s.projectRepo, domain.DefaultTotalValidator(),
		services.WithCompanyAuthorizer(s.authorizer),
		services.WithClock(func() time.Time { return s.now }))
}

func (s *CashRequestServiceTestSuite) TearDownTest() {
	s.authorizer.AssertExpectations(s.T())
	s.projectRepo.AssertExpectations(s.T())
	s.repo.AssertExpectations(s.T())
}

func (s *CashRequestServiceTestSuite) allow(userID string, role domain.CompanyRole) {
	s.authorizer.On("AuthorizeUserAction", mock.Anything, userID, testCompanyID, role).Return(nil).Once()
	s.projectRepo.On("FindProjectByID", mock.Anything, testCompanyID, testProjectID).
		Return(&domain.Project{ProjectID: testProjectID, CompanyID: testCompanyID}, nil).Once()
}

func (s *CashRequestServiceTestSuite) items() []dto.CashRequestItemRequest {
	return []dto.CashRequestItemRequest{
		{Description: "Semen 50kg", Quantity: dec("2"), Unit: "sak", UnitPrice: dec("50000"), TotalPrice: dec("100000")},
		{Description: "Pasir", Quantity: dec("1"), Unit: "m3", UnitPrice: dec("25000"), TotalPrice: dec("25000")},
	}
}

func (s *CashRequestServiceTestSuite) pending(requester string) *domain.CashRequest {
	return &domain.CashRequest{
		CashRequestID: "cr-1",
		ProjectID:     testProjectID,
		CompanyID:     testCompanyID,
		RequestedBy:   requester,
		TotalAmount:   dec("125000"),
		Status:        domain.CashRequestPending,
		History:       []domain.CashRequestHistory{{Action: domain.ActionCreated, ActorID: requester}},
	}
}

func (s *CashRequestServiceTestSuite) TestCreateCashRequest_Success() {
	s.allow(testUserID, domain.RoleMember)
	req := dto.CreateCashRequestRequest{Description: "Material pondasi", TotalAmount: dec("125000"), Items: s.items()}

	s.repo.On("SaveCashRequest", mock.Anything,
		mock.MatchedBy(func(cr domain.CashRequest) bool {
			if cr.Status != domain.CashRequestPending || cr.RequestedBy != testUserID || len(cr.Items) != 2 {
				return false
			}
			for i, it := range cr.Items {
				if it.CashRequestID != cr.CashRequestID || it.ItemID == "" || it.LineNo != i+1 {
					return false
				}
			}
			return true
		}),
		mock.MatchedBy(func(h domain.CashRequestHistory) bool {
			return h.Action == domain.ActionCreated && h.ActorID == testUserID && h.CreatedAt.Equal(s.now)
		}),
	).Return(nil).Once()

	cr, err := s.service.CreateCashRequest(context.Background(), testCompanyID, testProjectID, req, testUserID)
	s.Require().NoError(err)
	s.Regexp(regexp.MustCompile(`^CR-20260502-[0-9A-F]{6}$`), cr.RequestNumber)
	s.Len(cr.History, 1)
}

func (s *CashRequestServiceTestSuite) TestCreateCashRequest_TotalMismatch() {
	s.allow(testUserID, domain.RoleMember)
	req := dto.CreateCashRequestRequest{Description: "Material", TotalAmount: dec("130000"), Items: s.items()}

	_, err := s.service.CreateCashRequest(context.Background(), testCompanyID, testProjectID, req, testUserID)
	s.Require().ErrorIs(err, apperrors.ErrMismatch)

	var mismatch *domain.TotalMismatchError
	s.Require().True(errors.As(err, &mismatch))
	s.True(dec("125000").Equal(mismatch.Expected))
	s.True(dec("130000").Equal(mismatch.Actual))
	s.repo.AssertNotCalled(s.T(), "SaveCashRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CashRequestServiceTestSuite) TestCreateCashRequest_StrictLineTotals() {
	strict := domain.DefaultTotalValidator()
	strict.StrictLineTotals = true
	s.service = services.NewCashRequestService(s.repo, s.projectRepo, strict, services.WithCompanyAuthorizer(s.authorizer))
	s.allow(testUserID, domain.RoleMember)

	items := s.items()
	items[0].TotalPrice = dec("90000")
	req := dto.CreateCashRequestRequest{Description: "Material", TotalAmount: dec("115000"), Items: items}

	_, err := s.service.CreateCashRequest(context.Background(), testCompanyID, testProjectID, req, testUserID)
	var mismatch *domain.TotalMismatchError
	s.Require().True(errors.As(err, &mismatch))
	s.Equal(1, mismatch.Line)
}

func (s *CashRequestServiceTestSuite) TestUpdateCashRequest_ReplacesItems() {
	s.allow(testUserID, domain.RoleMember)
	s.repo.On("FindCashRequestByID", mock.Anything, testProjectID, "cr-1").Return(s.pending(testUserID), nil).Once()
	s.repo.On("UpdateCashRequest", mock.Anything,
		mock.MatchedBy(func(cr domain.CashRequest) bool {
			return len(cr.Items) == 1 && cr.TotalAmount.Equal(dec("300000"))
		}),
		mock.MatchedBy(func(h domain.CashRequestHistory) bool {
			return h.Action == domain.ActionUpdated && h.Comment == "harga naik"
		}),
	).Return(nil).Once()

	req := dto.UpdateCashRequestRequest{
		Description: "Besi beton",
		TotalAmount: dec("300000"),
		Items:       []dto.CashRequestItemRequest{{Description: "Besi 10mm", Quantity: dec("3"), UnitPrice: dec("100000"), TotalPrice: dec("300000")}},
		Comment:     "harga naik",
	}
	cr, err := s.service.UpdateCashRequest(context.Background(), testCompanyID, testProjectID, "cr-1", req, testUserID)
	s.Require().NoError(err)
	s.Len(cr.History, 2)
	s.Equal("Besi beton", cr.Description)
}

func (s *CashRequestServiceTestSuite) TestUpdateCashRequest_NotPending() {
	s.allow(testUserID, domain.RoleMember)
	approved := s.pending(testUserID)
	approved.Status = domain.CashRequestApproved
	s.repo.On("FindCashRequestByID", mock.Anything, testProjectID, "cr-1").Return(approved, nil).Once()

	req := dto.UpdateCashRequestRequest{Description: "x", TotalAmount: dec("125000"), Items: s.items()}
	_, err := s.service.UpdateCashRequest(context.Background(), testCompanyID, testProjectID, "cr-1", req, testUserID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CashRequestServiceTestSuite) TestDecideCashRequest_Approve() {
	s.allow("approver", domain.RoleMember)
	s.repo.On("FindCashRequestByID", mock.Anything, testProjectID, "cr-1").Return(s.pending("requester"), nil).Once()
	s.repo.On("UpdateCashRequestStatus", mock.Anything,
		mock.MatchedBy(func(cr domain.CashRequest) bool {
			return cr.Status == domain.CashRequestApproved && cr.ReviewedBy != nil && *cr.ReviewedBy == "approver"
		}),
		mock.MatchedBy(func(h domain.CashRequestHistory) bool {
			return h.Action == domain.ActionApproved && h.ActorID == "approver" && h.Comment == "ok"
		}),
	).Return(nil).Once()

	cr, err := s.service.DecideCashRequest(context.Background(), testCompanyID, testProjectID, "cr-1",
		dto.DecideCashRequestRequest{Status: domain.CashRequestApproved, Comment: "ok"}, "approver")
	s.Require().NoError(err)
	s.Equal(domain.CashRequestApproved, cr.Status)
	s.Require().NotNil(cr.ReviewedAt)
	s.Equal(s.now, *cr.ReviewedAt)
	s.Len(cr.History, 2)
}

func (s *CashRequestServiceTestSuite) TestDecideCashRequest_SelfApprovalForbidden() {
	for _, status := range []domain.CashRequestStatus{domain.CashRequestApproved, domain.CashRequestRejected} {
		s.allow("requester", domain.RoleMember)
		s.repo.On("FindCashRequestByID", mock.Anything, testProjectID, "cr-1").Return(s.pending("requester"), nil).Once()

		_, err := s.service.DecideCashRequest(context.Background(), testCompanyID, testProjectID, "cr-1",
			dto.DecideCashRequestRequest{Status: status}, "requester")
		s.ErrorIs(err, apperrors.ErrForbidden, string(status))
	}
	s.repo.AssertNotCalled(s.T(), "UpdateCashRequestStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CashRequestServiceTestSuite) TestDecideCashRequest_ConcurrentDecision() {
	s.allow("approver", domain.RoleMember)
	s.repo.On("FindCashRequestByID", mock.Anything, testProjectID, "cr-1").Return(s.pending("requester"), nil).Once()
	s.repo.On("UpdateCashRequestStatus", mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.NewForbiddenError("cash request is no longer pending")).Once()

	_, err := s.service.DecideCashRequest(context.Background(), testCompanyID, testProjectID, "cr-1",
		dto.DecideCashRequestRequest{Status: domain.CashRequestRejected}, "approver")
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CashRequestServiceTestSuite) TestDeleteCashRequest_ByRequester() {
	s.allow(testUserID, domain.RoleMember)
	s.repo.On("FindCashRequestByID", mock.Anything, testProjectID, "cr-1").Return(s.pending(testUserID), nil).Once()
	s.repo.On("DeleteCashRequest", mock.Anything, testProjectID, "cr-1").Return(nil).Once()

	s.NoError(s.service.DeleteCashRequest(context.Background(), testCompanyID, testProjectID, "cr-1", testUserID))
}

func (s *CashRequestServiceTestSuite) TestDeleteCashRequest_ByAdmin() {
	s.allow("admin", domain.RoleMember)
	s.authorizer.On("AuthorizeUserAction", mock.Anything, "admin", testCompanyID, domain.RoleAdmin).Return(nil).Once()
	s.repo.On("FindCashRequestByID", mock.Anything, testProjectID, "cr-1").Return(s.pending("requester"), nil).Once()
	s.repo.On("DeleteCashRequest", mock.Anything, testProjectID, "cr-1").Return(nil).Once()

	s.NoError(s.service.DeleteCashRequest(context.Background(), testCompanyID, testProjectID, "cr-1", "admin"))
}

func (s *CashRequestServiceTestSuite) TestDeleteCashRequest_OtherMemberForbidden() {
	s.allow("other", domain.RoleMember)
	s.authorizer.On("AuthorizeUserAction", mock.Anything, "other", testCompanyID, domain.RoleAdmin).Return(apperrors.ErrForbidden).Once()
	s.repo.On("FindCashRequestByID", mock.Anything, testProjectID, "cr-1").Return(s.pending("requester"), nil).Once()

	err := s.service.DeleteCashRequest(context.Background(), testCompanyID, testProjectID, "cr-1", "other")
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.repo.AssertNotCalled(s.T(), "DeleteCashRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CashRequestServiceTestSuite) TestDeleteCashRequest_DecidedForbidden() {
	s.allow(testUserID, domain.RoleMember)
	rejected := s.pending(testUserID)
	rejected.Status = domain.CashRequestRejected
	s.repo.On("FindCashRequestByID", mock.Anything, testProjectID, "cr-1").Return(rejected, nil).Once()

	err := s.service.DeleteCashRequest(context.Background(), testCompanyID, testProjectID, "cr-1", testUserID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CashRequestServiceTestSuite) TestListCashRequests_StatusFilter() {
	s.allow(testUserID, domain.RoleReadOnly)
	next := "tok"
	pending := domain.CashRequestPending
	s.repo.On("ListCashRequestsByProject", mock.Anything, testProjectID, &pending, 20, (*string)(nil)).
		Return([]domain.CashRequest{*s.pending(testUserID)}, &next, nil).Once()

	status := "PENDING"
	resp, err := s.service.ListCashRequests(context.Background(), testCompanyID, testProjectID, testUserID,
		dto.ListCashRequestsParams{Limit: 20, Status: &status})
	s.Require().NoError(err)
	s.Len(resp.CashRequests, 1)
	s.Equal(&next, resp.NextToken)
}

func TestCashRequestService(t *testing.T) {
	suite.Run(t, new(CashRequestServiceTestSuite))
}
