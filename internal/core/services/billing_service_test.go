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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testCompanyID = "co-1"
	testProjectID = "proj-1"
	testUserID    = "user-1"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type BillingServiceTestSuite struct {
	suite.Suite
	authorizer  *MockAuthorizer
	projectRepo *MockProjectRepository
	billingRepo *MockBillingRepository
	service     portssvc.BillingSvcFacade
	now         time.Time
}

func (s *BillingServiceTestSuite) SetupTest() {
	s.authorizer = new(MockAuthorizer)
	s.projectRepo = new(MockProjectRepository)
	s.billingRepo = new(MockBillingRepository)
	s.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.service = services.NewBillingService(s.billingRepo, s.projectRepo, domain.DefaultTaxRates(),
		services.WithCompanyAuthorizer(s.authorizer),
		services.WithClock(func() time.Time { return s.now }))
}

func (s *BillingServiceTestSuite) TearDownTest() {
	s.authorizer.AssertExpectations(s.T())
	s.projectRepo.AssertExpectations(s.T())
	s.billingRepo.AssertExpectations(s.T())
}

func (s *BillingServiceTestSuite) allow(role domain.CompanyRole) {
	s.authorizer.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, role).Return(nil).Once()
	s.projectRepo.On("FindProjectByID", mock.Anything, testCompanyID, testProjectID).
		Return(&domain.Project{ProjectID: testProjectID, CompanyID: testCompanyID}, nil).Once()
}

func (s *BillingServiceTestSuite) storedBilling(id string, status domain.BillingStatus) *domain.Billing {
	b := &domain.Billing{
		BillingID: id,
		ProjectID: testProjectID,
		CompanyID: testCompanyID,
		Status:    status,
	}
	amounts, err := domain.DefaultTaxRates().Calculate(dec("500000000"), dec("75000000"))
	s.Require().NoError(err)
	b.ApplyAmounts(amounts)
	return b
}

func (s *BillingServiceTestSuite) TestCalculateBilling() {
	s.authorizer.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, domain.RoleReadOnly).Return(nil).Once()

	amounts, err := s.service.CalculateBilling(context.Background(), testCompanyID, testUserID, dec("500000000"), dec("75000000"))
	s.Require().NoError(err)
	s.True(dec("433400000").Equal(amounts.NetReceivable))
}

func (s *BillingServiceTestSuite) TestCalculateBilling_InvalidInput() {
	s.authorizer.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, domain.RoleReadOnly).Return(nil).Once()

	_, err := s.service.CalculateBilling(context.Background(), testCompanyID, testUserID, dec("100"), dec("100"))
	s.ErrorIs(err, apperrors.ErrInvalidInput)
}

func (s *BillingServiceTestSuite) TestCreateBilling_DerivesAmounts() {
	s.allow(domain.RoleMember)
	req := dto.CreateBillingRequest{
		InvoiceNumber:        "INV/2026/001",
		BillingDate:          s.now,
		BillingValue:         dec("500000000"),
		DownPaymentDeduction: dec("75000000"),
	}
	s.billingRepo.On("SaveBilling", mock.Anything, mock.MatchedBy(func(b domain.Billing) bool {
		return b.Status == domain.BillingUnpaid &&
			b.Retention.Equal(dec("25000000")) &&
			b.TaxBase.Equal(dec("400000000")) &&
			b.VAT.Equal(dec("44000000")) &&
			b.WithholdingTax.Equal(dec("10600000")) &&
			b.NetReceivable.Equal(dec("433400000")) &&
			b.PaymentDate == nil
	})).Return(nil).Once()

	billing, err := s.service.CreateBilling(context.Background(), testCompanyID, testProjectID, req, testUserID)
	s.Require().NoError(err)
	s.NotEmpty(billing.BillingID)
	s.Equal(testUserID, billing.CreatedBy)
}

func (s *BillingServiceTestSuite) TestCreateBilling_InvalidAmounts() {
	s.allow(domain.RoleMember)
	req := dto.CreateBillingRequest{InvoiceNumber: "INV", BillingDate: s.now, BillingValue: decimal.Zero}

	_, err := s.service.CreateBilling(context.Background(), testCompanyID, testProjectID, req, testUserID)
	s.ErrorIs(err, apperrors.ErrInvalidInput)
	s.billingRepo.AssertNotCalled(s.T(), "SaveBilling", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestCreateBilling_ReadOnlyForbidden() {
	s.authorizer.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, domain.RoleMember).
		Return(apperrors.ErrForbidden).Once()

	_, err := s.service.CreateBilling(context.Background(), testCompanyID, testProjectID, dto.CreateBillingRequest{}, testUserID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *BillingServiceTestSuite) TestCreateBilling_ProjectOfOtherCompany() {
	s.authorizer.On("AuthorizeUserAction", mock.Anything, testUserID, testCompanyID, domain.RoleMember).Return(nil).Once()
	s.projectRepo.On("FindProjectByID", mock.Anything, testCompanyID, testProjectID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CreateBilling(context.Background(), testCompanyID, testProjectID, dto.CreateBillingRequest{}, testUserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BillingServiceTestSuite) TestUpdateBilling_RecomputesAmounts() {
	s.allow(domain.RoleMember)
	stored := s.storedBilling("b1", domain.BillingUnpaid)
	s.billingRepo.On("FindBillingByID", mock.Anything, testProjectID, "b1").Return(stored, nil).Once()
	s.billingRepo.On("UpdateBilling", mock.Anything, mock.MatchedBy(func(b domain.Billing) bool {
		return b.BillingValue.Equal(dec("600000000")) &&
			b.DownPaymentDeduction.Equal(dec("75000000")) &&
			b.NetReceivable.Equal(dec("536332500")) &&
			b.LastUpdatedBy == testUserID
	})).Return(nil).Once()

	value := dec("600000000")
	billing, err := s.service.UpdateBilling(context.Background(), testCompanyID, testProjectID, "b1",
		dto.UpdateBillingRequest{BillingValue: &value}, testUserID)
	s.Require().NoError(err)
	s.True(dec("30000000").Equal(billing.Retention))
	s.True(dec("495000000").Equal(billing.TaxBase))
}

func (s *BillingServiceTestSuite) TestUpdateBillingStatus_PayingSetsPaymentDate() {
	s.allow(domain.RoleMember)
	s.billingRepo.On("FindBillingByID", mock.Anything, testProjectID, "b1").
		Return(s.storedBilling("b1", domain.BillingUnpaid), nil).Once()
	s.billingRepo.On("UpdateBillingStatus", mock.Anything, mock.MatchedBy(func(b domain.Billing) bool {
		return b.Status == domain.BillingPaidRetentionHeld && b.PaymentDate != nil && b.PaymentDate.Equal(s.now) && !b.RetentionPaid
	})).Return(nil).Once()

	billing, decision, err := s.service.UpdateBillingStatus(context.Background(), testCompanyID, testProjectID, "b1",
		dto.UpdateBillingStatusRequest{Status: domain.BillingPaidRetentionHeld}, testUserID)
	s.Require().NoError(err)
	s.Equal(domain.BillingPaidRetentionHeld, billing.Status)
	s.False(decision.HasWarnings())
	s.billingRepo.AssertNotCalled(s.T(), "ListBillingsByProject", mock.Anything, mock.Anything)
}

func (s *BillingServiceTestSuite) TestUpdateBillingStatus_ReleaseWithUnpaidSiblingWarns() {
	s.allow(domain.RoleMember)
	paidOn := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	stored := s.storedBilling("b1", domain.BillingPaidRetentionHeld)
	stored.PaymentDate = &paidOn
	s.billingRepo.On("FindBillingByID", mock.Anything, testProjectID, "b1").Return(stored, nil).Once()
	s.billingRepo.On("ListBillingsByProject", mock.Anything, testProjectID).Return([]domain.Billing{
		{BillingID: "b1", Status: domain.BillingPaidRetentionHeld},
		{BillingID: "b2", Status: domain.BillingUnpaid},
	}, nil).Once()
	s.billingRepo.On("UpdateBillingStatus", mock.Anything, mock.MatchedBy(func(b domain.Billing) bool {
		return b.Status == domain.BillingPaid && b.RetentionPaid && b.PaymentDate.Equal(paidOn)
	})).Return(nil).Once()

	billing, decision, err := s.service.UpdateBillingStatus(context.Background(), testCompanyID, testProjectID, "b1",
		dto.UpdateBillingStatusRequest{Status: domain.BillingPaid}, testUserID)
	s.Require().NoError(err)
	s.Equal(domain.BillingPaid, billing.Status)
	s.Equal([]string{domain.WarningRetentionNotReleasable}, decision.Warnings)
}

func (s *BillingServiceTestSuite) TestUpdateBillingStatus_ReleaseWithSettledSiblings() {
	s.allow(domain.RoleMember)
	s.billingRepo.On("FindBillingByID", mock.Anything, testProjectID, "b1").
		Return(s.storedBilling("b1", domain.BillingPaidRetentionHeld), nil).Once()
	s.billingRepo.On("ListBillingsByProject", mock.Anything, testProjectID).Return([]domain.Billing{
		{BillingID: "b1", Status: domain.BillingPaidRetentionHeld},
		{BillingID: "b2", Status: domain.BillingPaid},
	}, nil).Once()
	s.billingRepo.On("UpdateBillingStatus", mock.Anything, mock.Anything).Return(nil).Once()

	_, decision, err := s.service.UpdateBillingStatus(context.Background(), testCompanyID, testProjectID, "b1",
		dto.UpdateBillingStatusRequest{Status: domain.BillingPaid}, testUserID)
	s.Require().NoError(err)
	s.Empty(decision.Warnings)
}

func (s *BillingServiceTestSuite) TestUpdateBillingStatus_RevertFromPaidWarns() {
	s.allow(domain.RoleMember)
	s.billingRepo.On("FindBillingByID", mock.Anything, testProjectID, "b1").
		Return(s.storedBilling("b1", domain.BillingPaid), nil).Once()
	s.billingRepo.On("UpdateBillingStatus", mock.Anything, mock.MatchedBy(func(b domain.Billing) bool {
		return b.Status == domain.BillingUnpaid && b.PaymentDate == nil
	})).Return(nil).Once()

	_, decision, err := s.service.UpdateBillingStatus(context.Background(), testCompanyID, testProjectID, "b1",
		dto.UpdateBillingStatusRequest{Status: domain.BillingUnpaid}, testUserID)
	s.Require().NoError(err)
	s.Equal([]string{domain.WarningRevertFromPaid}, decision.Warnings)
}

func (s *BillingServiceTestSuite) TestUpdateBillingStatus_NotFound() {
	s.allow(domain.RoleMember)
	s.billingRepo.On("FindBillingByID", mock.Anything, testProjectID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := s.service.UpdateBillingStatus(context.Background(), testCompanyID, testProjectID, "missing",
		dto.UpdateBillingStatusRequest{Status: domain.BillingPaid}, testUserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BillingServiceTestSuite) TestListBillings_EmptyNotNil() {
	s.allow(domain.RoleReadOnly)
	s.billingRepo.On("ListBillingsByProject", mock.Anything, testProjectID).Return(nil, nil).Once()

	billings, err := s.service.ListBillings(context.Background(), testCompanyID, testProjectID, testUserID)
	s.Require().NoError(err)
	s.NotNil(billings)
}

func (s *BillingServiceTestSuite) TestDeleteBilling() {
	s.allow(domain.RoleMember)
	s.billingRepo.On("DeleteBilling", mock.Anything, testProjectID, "b1").Return(nil).Once()

	s.NoError(s.service.DeleteBilling(context.Background(), testCompanyID, testProjectID, "b1", testUserID))
}

func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
