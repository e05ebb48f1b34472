package pgsql

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	"github.com/karyabangun/bizadmin/internal/models"
	"github.com/karyabangun/bizadmin/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionSelectQuery = `
SELECT transaction_id, project_id, company_id, transaction_date, type, category,
       amount, description, reference,
       created_at, created_by, last_updated_at, last_updated_by
FROM cash_transactions
`

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, projectID, transactionID string) (*domain.Transaction, error) {
	rows, err := collect[models.Transaction](ctx, r.Pool, transactionSelectQuery+`WHERE project_id = $1 AND transaction_id = $2`, projectID, transactionID)
	if err != nil {
		return nil, readError(err, "transaction "+transactionID)
	}
	if len(rows) == 0 {
		return nil, notFound("transaction " + transactionID)
	}
	txn := models.ToDomainTransaction(rows[0])
	return &txn, nil
}

// ListTransactionsByProject pages transactions by (transaction_date, created_at, transaction_id) descending.
func (r *PgxTransactionRepository) ListTransactionsByProject(ctx context.Context, projectID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{projectID}
	query := transactionSelectQuery + `WHERE project_id = $1`
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Type != nil {
		query += ` AND type = ` + next(string(*filter.Type))
	}
	if filter.Category != nil {
		query += ` AND category = ` + next(string(*filter.Category))
	}
	if filter.From != nil {
		query += ` AND transaction_date >= ` + next(*filter.From)
	}
	if filter.To != nil {
		query += ` AND transaction_date <= ` + next(*filter.To)
	}

	cursorClause, err := keysetClause(nextToken, "transaction_date", "transaction_id", &args)
	if err != nil {
		return nil, nil, err
	}
	query += cursorClause + ` ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC` + limitClause(limit, &args)

	rows, err := collect[models.Transaction](ctx, r.Pool, query, args...)
	if err != nil {
		return nil, nil, readError(err, "transactions of project "+projectID)
	}
	page, token := pagination.Page(rows, limit, func(t models.Transaction) pagination.Cursor {
		return pagination.Cursor{SortDate: t.TransactionDate, CreatedAt: t.CreatedAt, ID: t.TransactionID}
	})
	return models.ToDomainSlice(page, models.ToDomainTransaction), token, nil
}

func (r *PgxTransactionRepository) ListAllTransactionsByProject(ctx context.Context, projectID string) ([]domain.Transaction, error) {
	rows, err := collect[models.Transaction](ctx, r.Pool, transactionSelectQuery+`WHERE project_id = $1 ORDER BY transaction_date, created_at`, projectID)
	if err != nil {
		return nil, readError(err, "transactions of project "+projectID)
	}
	return models.ToDomainSlice(rows, models.ToDomainTransaction), nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := models.ToModelTransaction(txn)
	query := `
		INSERT INTO cash_transactions (
			transaction_id, project_id, company_id, transaction_date, type, category,
			amount, description, reference,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.ProjectID, m.CompanyID, m.TransactionDate, m.Type, m.Category,
		m.Amount, m.Description, m.Reference,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "transaction "+m.TransactionID)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := models.ToModelTransaction(txn)
	query := `
		UPDATE cash_transactions
		SET transaction_date = $1, type = $2, category = $3, amount = $4,
		    description = $5, reference = $6, last_updated_at = $7, last_updated_by = $8
		WHERE project_id = $9 AND transaction_id = $10;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionDate, m.Type, m.Category, m.Amount,
		m.Description, m.Reference, m.LastUpdatedAt, m.LastUpdatedBy,
		m.ProjectID, m.TransactionID,
	)
	if err != nil {
		return mapWriteError(err, "transaction "+m.TransactionID)
	}
	return expectOne(tag, "transaction "+m.TransactionID)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, projectID, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM cash_transactions WHERE project_id = $1 AND transaction_id = $2;`, projectID, transactionID)
	if err != nil {
		return mapWriteError(err, "transaction "+transactionID)
	}
	return expectOne(tag, "transaction "+transactionID)
}
