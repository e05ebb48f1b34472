package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	"github.com/karyabangun/bizadmin/internal/models"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company and membership data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companySelectQuery = `
SELECT c.company_id, c.name, c.address, c.npwp, c.is_active,
       c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM companies c
`

const memberSelectQuery = `
SELECT m.user_id, u.name AS user_name, m.company_id, m.role, m.joined_at
FROM company_members m
JOIN users u ON u.user_id = m.user_id
`

const memberUpsertQuery = `
INSERT INTO company_members (user_id, company_id, role, joined_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, company_id) DO UPDATE SET role = EXCLUDED.role;
`

// SaveCompany inserts the company and its first admin in one transaction.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company, admin domain.CompanyMember) error {
	m := models.ToModelCompany(company)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		batch.Queue(`
			INSERT INTO companies (
				company_id, name, address, npwp, is_active,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			m.CompanyID, m.Name, m.Address, m.NPWP, m.IsActive,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		batch.Queue(memberUpsertQuery, admin.UserID, m.CompanyID, string(admin.Role), admin.JoinedAt)

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return mapWriteError(err, "company "+m.Name)
		}
		return nil
	})
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	rows, err := collect[models.Company](ctx, r.Pool, companySelectQuery+`WHERE c.company_id = $1`, companyID)
	if err != nil {
		return nil, readError(err, "company "+companyID)
	}
	if len(rows) == 0 {
		return nil, notFound("company " + companyID)
	}
	company := models.ToDomainCompany(rows[0])
	return &company, nil
}

// ListCompaniesByUserID lists active companies where the user holds a live role.
func (r *PgxCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error) {
	query := companySelectQuery + `
		JOIN company_members m ON m.company_id = c.company_id
		WHERE m.user_id = $1 AND m.role <> $2 AND c.is_active = true
		ORDER BY c.name;`
	rows, err := collect[models.Company](ctx, r.Pool, query, userID, string(domain.RoleRemoved))
	if err != nil {
		return nil, readError(err, "companies of user "+userID)
	}
	return models.ToDomainSlice(rows, models.ToDomainCompany), nil
}

func (r *PgxCompanyRepository) AddUserToCompany(ctx context.Context, member domain.CompanyMember) error {
	_, err := r.Pool.Exec(ctx, memberUpsertQuery, member.UserID, member.CompanyID, string(member.Role), member.JoinedAt)
	if err != nil {
		return mapWriteError(err, "membership of "+member.UserID+" in "+member.CompanyID)
	}
	return nil
}

func (r *PgxCompanyRepository) FindUserCompanyRole(ctx context.Context, userID, companyID string) (*domain.CompanyMember, error) {
	rows, err := collect[models.CompanyMember](ctx, r.Pool, memberSelectQuery+`WHERE m.user_id = $1 AND m.company_id = $2`, userID, companyID)
	if err != nil {
		return nil, readError(err, "membership")
	}
	if len(rows) == 0 {
		return nil, notFound("company " + companyID)
	}
	member := models.ToDomainCompanyMember(rows[0])
	return &member, nil
}

// ListUsersByCompanyID lists members of a company, excluding removed ones, newest first.
func (r *PgxCompanyRepository) ListUsersByCompanyID(ctx context.Context, companyID string) ([]domain.CompanyMember, error) {
	query := memberSelectQuery + `WHERE m.company_id = $1 AND m.role <> $2 ORDER BY m.joined_at DESC;`
	rows, err := collect[models.CompanyMember](ctx, r.Pool, query, companyID, string(domain.RoleRemoved))
	if err != nil {
		return nil, readError(err, "members of company "+companyID)
	}
	return models.ToDomainSlice(rows, models.ToDomainCompanyMember), nil
}
