package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	"github.com/karyabangun/bizadmin/internal/models"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelectQuery = `
SELECT user_id, username, name, email, password_hash, auth_provider, provider_user_id,
       created_at, created_by, last_updated_at, last_updated_by, deleted_at
FROM users
`

func (r *PgxUserRepository) findOne(ctx context.Context, what, filter string, args ...any) (*domain.User, error) {
	rows, err := collect[models.User](ctx, r.Pool, userSelectQuery+filter, args...)
	if err != nil {
		return nil, readError(err, what)
	}
	if len(rows) == 0 {
		return nil, notFound(what)
	}
	user := models.ToDomainUser(rows[0])
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user "+userID, `WHERE user_id = $1 AND deleted_at IS NULL`, userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "user "+username, `WHERE username = $1 AND deleted_at IS NULL`, username)
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, "user identity",
		`WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL`,
		string(provider), providerUserID)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := models.ToModelUser(user)
	query := `
		INSERT INTO users (
			user_id, username, name, email, password_hash, auth_provider, provider_user_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.AuthProvider,
		m.ProviderUserID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "user "+m.Username)
	}
	return nil
}
