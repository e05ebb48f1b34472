package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	"github.com/karyabangun/bizadmin/internal/models"
	"github.com/karyabangun/bizadmin/internal/utils/pagination"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectSelectQuery = `
SELECT project_id, company_id, code, name, client_name, location,
       contract_value, down_payment, start_date, end_date, status,
       created_at, created_by, last_updated_at, last_updated_by
FROM projects
`

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, companyID, projectID string) (*domain.Project, error) {
	rows, err := collect[models.Project](ctx, r.Pool, projectSelectQuery+`WHERE company_id = $1 AND project_id = $2`, companyID, projectID)
	if err != nil {
		return nil, readError(err, "project "+projectID)
	}
	if len(rows) == 0 {
		return nil, notFound("project " + projectID)
	}
	project := models.ToDomainProject(rows[0])
	return &project, nil
}

// ListProjectsByCompany pages projects by (start_date, created_at, project_id) descending.
func (r *PgxProjectRepository) ListProjectsByCompany(ctx context.Context, companyID string, status *domain.ProjectStatus, limit int, nextToken *string) ([]domain.Project, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{companyID}
	query := projectSelectQuery + `WHERE company_id = $1`
	if status != nil {
		args = append(args, string(*status))
		query += ` AND status = $2`
	}
	cursorClause, err := keysetClause(nextToken, "start_date", "project_id", &args)
	if err != nil {
		return nil, nil, err
	}
	query += cursorClause + ` ORDER BY start_date DESC, created_at DESC, project_id DESC` + limitClause(limit, &args)

	rows, err := collect[models.Project](ctx, r.Pool, query, args...)
	if err != nil {
		return nil, nil, readError(err, "projects of company "+companyID)
	}
	page, next := pagination.Page(rows, limit, func(p models.Project) pagination.Cursor {
		return pagination.Cursor{SortDate: p.StartDate, CreatedAt: p.CreatedAt, ID: p.ProjectID}
	})
	return models.ToDomainSlice(page, models.ToDomainProject), next, nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := models.ToModelProject(project)
	query := `
		INSERT INTO projects (
			project_id, company_id, code, name, client_name, location,
			contract_value, down_payment, start_date, end_date, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID, m.CompanyID, m.Code, m.Name, m.ClientName, m.Location,
		m.ContractValue, m.DownPayment, m.StartDate, m.EndDate, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "project code "+m.Code)
	}
	return nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := models.ToModelProject(project)
	query := `
		UPDATE projects
		SET code = $1, name = $2, client_name = $3, location = $4,
		    contract_value = $5, down_payment = $6, start_date = $7, end_date = $8, status = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE company_id = $12 AND project_id = $13;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Code, m.Name, m.ClientName, m.Location,
		m.ContractValue, m.DownPayment, m.StartDate, m.EndDate, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.CompanyID, m.ProjectID,
	)
	if err != nil {
		return mapWriteError(err, "project code "+m.Code)
	}
	return expectOne(tag, "project "+m.ProjectID)
}

// DeleteProject relies on ON DELETE CASCADE for billings, transactions and cash requests.
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, companyID, projectID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE company_id = $1 AND project_id = $2;`, companyID, projectID)
	if err != nil {
		return mapWriteError(err, "project "+projectID)
	}
	return expectOne(tag, "project "+projectID)
}
