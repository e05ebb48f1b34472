package pgsql

import (
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		CompanyRepo:     newPgxCompanyRepository(dbPool),
		ProjectRepo:     newPgxProjectRepository(dbPool),
		BillingRepo:     newPgxBillingRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CashRequestRepo: newPgxCashRequestRepository(dbPool),
	}
}
