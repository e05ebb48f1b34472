package services

import (
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Company service first: every other service authorizes through it
	container.Company = NewCompanyService(repos.CompanyRepo, repos.UserRepo, cfg.MembershipCacheTTL)
	authorizer := WithCompanyAuthorizer(container.Company)

	rates := domain.TaxRates{
		RetentionRate:   cfg.RetentionRate,
		VATRate:         cfg.VATRate,
		WithholdingRate: cfg.WithholdingRate,
	}
	totals := domain.TotalValidator{
		Tolerance:        cfg.CashRequestTolerance,
		StrictLineTotals: cfg.CashRequestStrictLineTotals,
	}

	container.User = NewUserService(repos.UserRepo)
	container.Project = NewProjectService(repos.ProjectRepo, repos.BillingRepo, repos.TransactionRepo, repos.CashRequestRepo, authorizer)
	container.Billing = NewBillingService(repos.BillingRepo, repos.ProjectRepo, rates, authorizer)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.ProjectRepo, authorizer)
	container.CashRequest = NewCashRequestService(repos.CashRequestRepo, repos.ProjectRepo, totals, authorizer)

	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
