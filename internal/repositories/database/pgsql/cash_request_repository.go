package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	"github.com/karyabangun/bizadmin/internal/models"
	"github.com/karyabangun/bizadmin/internal/utils/pagination"
)

type PgxCashRequestRepository struct {
	BaseRepository
}

// newPgxCashRequestRepository creates a new repository for cash requests, their items and history.
func newPgxCashRequestRepository(pool *pgxpool.Pool) portsrepo.CashRequestRepositoryFacade {
	return &PgxCashRequestRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashRequestRepositoryFacade = (*PgxCashRequestRepository)(nil)

const cashRequestSelectQuery = `
SELECT cash_request_id, project_id, company_id, request_number, description, requested_by,
       total_amount, status, reviewed_by, reviewed_at,
       created_at, created_by, last_updated_at, last_updated_by
FROM cash_requests
`

const cashRequestItemInsertQuery = `
INSERT INTO cash_request_items (
	item_id, cash_request_id, line_no, description, quantity, unit, unit_price, total_price
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

const cashRequestHistoryInsertQuery = `
INSERT INTO cash_request_history (history_id, cash_request_id, action, actor_id, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6);
`

func queueItems(batch *pgx.Batch, items []domain.CashRequestItem) {
	for _, it := range items {
		batch.Queue(cashRequestItemInsertQuery,
			it.ItemID, it.CashRequestID, it.LineNo, it.Description,
			it.Quantity, it.Unit, it.UnitPrice, it.TotalPrice,
		)
	}
}

func queueHistory(batch *pgx.Batch, h domain.CashRequestHistory) {
	batch.Queue(cashRequestHistoryInsertQuery, h.HistoryID, h.CashRequestID, string(h.Action), h.ActorID, h.Comment, h.CreatedAt)
}

func (r *PgxCashRequestRepository) FindCashRequestByID(ctx context.Context, projectID, cashRequestID string) (*domain.CashRequest, error) {
	headers, err := collect[models.CashRequest](ctx, r.Pool, cashRequestSelectQuery+`WHERE project_id = $1 AND cash_request_id = $2`, projectID, cashRequestID)
	if err != nil {
		return nil, readError(err, "cash request "+cashRequestID)
	}
	if len(headers) == 0 {
		return nil, notFound("cash request " + cashRequestID)
	}

	items, err := collect[models.CashRequestItem](ctx, r.Pool, `
		SELECT item_id, cash_request_id, line_no, description, quantity, unit, unit_price, total_price
		FROM cash_request_items
		WHERE cash_request_id = $1
		ORDER BY line_no;`, cashRequestID)
	if err != nil {
		return nil, readError(err, "items of cash request "+cashRequestID)
	}
	history, err := collect[models.CashRequestHistory](ctx, r.Pool, `
		SELECT history_id, cash_request_id, action, actor_id, comment, created_at
		FROM cash_request_history
		WHERE cash_request_id = $1
		ORDER BY created_at, history_id;`, cashRequestID)
	if err != nil {
		return nil, readError(err, "history of cash request "+cashRequestID)
	}

	cr := models.ToDomainCashRequest(headers[0])
	cr.Items = models.ToDomainSlice(items, models.ToDomainCashRequestItem)
	cr.History = models.ToDomainSlice(history, models.ToDomainCashRequestHistory)
	return &cr, nil
}

// ListCashRequestsByProject pages headers by created_at then cash_request_id, newest first.
func (r *PgxCashRequestRepository) ListCashRequestsByProject(ctx context.Context, projectID string, status *domain.CashRequestStatus, limit int, nextToken *string) ([]domain.CashRequest, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{projectID}
	query := cashRequestSelectQuery + `WHERE project_id = $1`
	if status != nil {
		args = append(args, string(*status))
		query += ` AND status = $2`
	}
	cursorClause, err := keysetClause(nextToken, "created_at", "cash_request_id", &args)
	if err != nil {
		return nil, nil, err
	}
	query += cursorClause + ` ORDER BY created_at DESC, cash_request_id DESC` + limitClause(limit, &args)

	rows, err := collect[models.CashRequest](ctx, r.Pool, query, args...)
	if err != nil {
		return nil, nil, readError(err, "cash requests of project "+projectID)
	}
	page, token := pagination.Page(rows, limit, func(cr models.CashRequest) pagination.Cursor {
		return pagination.Cursor{SortDate: cr.CreatedAt, CreatedAt: cr.CreatedAt, ID: cr.CashRequestID}
	})
	return models.ToDomainSlice(page, models.ToDomainCashRequest), token, nil
}

func (r *PgxCashRequestRepository) ListAllCashRequestsByProject(ctx context.Context, projectID string) ([]domain.CashRequest, error) {
	rows, err := collect[models.CashRequest](ctx, r.Pool, cashRequestSelectQuery+`WHERE project_id = $1 ORDER BY created_at`, projectID)
	if err != nil {
		return nil, readError(err, "cash requests of project "+projectID)
	}
	return models.ToDomainSlice(rows, models.ToDomainCashRequest), nil
}

func (r *PgxCashRequestRepository) SaveCashRequest(ctx context.Context, cashRequest domain.CashRequest, history domain.CashRequestHistory) error {
	m := models.ToModelCashRequest(cashRequest)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		batch.Queue(`
			INSERT INTO cash_requests (
				cash_request_id, project_id, company_id, request_number, description, requested_by,
				total_amount, status, reviewed_by, reviewed_at,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
			m.CashRequestID, m.ProjectID, m.CompanyID, m.RequestNumber, m.Description, m.RequestedBy,
			m.TotalAmount, m.Status, m.ReviewedBy, m.ReviewedAt,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		queueItems(batch, cashRequest.Items)
		queueHistory(batch, history)

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return mapWriteError(err, "cash request "+m.RequestNumber)
		}
		return nil
	})
}

// UpdateCashRequest rewrites a pending request. The status guard in the WHERE
// clause keeps a concurrent decision from being overwritten.
func (r *PgxCashRequestRepository) UpdateCashRequest(ctx context.Context, cashRequest domain.CashRequest, history domain.CashRequestHistory) error {
	m := models.ToModelCashRequest(cashRequest)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE cash_requests
			SET description = $1, total_amount = $2, last_updated_at = $3, last_updated_by = $4
			WHERE project_id = $5 AND cash_request_id = $6 AND status = $7;`,
			m.Description, m.TotalAmount, m.LastUpdatedAt, m.LastUpdatedBy,
			m.ProjectID, m.CashRequestID, string(domain.CashRequestPending),
		)
		if err != nil {
			return mapWriteError(err, "cash request "+m.CashRequestID)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewForbiddenError("cash request is no longer pending")
		}

		batch := &pgx.Batch{}
		batch.Queue(`DELETE FROM cash_request_items WHERE cash_request_id = $1;`, m.CashRequestID)
		queueItems(batch, cashRequest.Items)
		queueHistory(batch, history)
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return mapWriteError(err, "items of cash request "+m.CashRequestID)
		}
		return nil
	})
}

func (r *PgxCashRequestRepository) UpdateCashRequestStatus(ctx context.Context, cashRequest domain.CashRequest, history domain.CashRequestHistory) error {
	m := models.ToModelCashRequest(cashRequest)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE cash_requests
			SET status = $1, reviewed_by = $2, reviewed_at = $3, last_updated_at = $4, last_updated_by = $5
			WHERE project_id = $6 AND cash_request_id = $7 AND status = $8;`,
			m.Status, m.ReviewedBy, m.ReviewedAt, m.LastUpdatedAt, m.LastUpdatedBy,
			m.ProjectID, m.CashRequestID, string(domain.CashRequestPending),
		)
		if err != nil {
			return mapWriteError(err, "cash request "+m.CashRequestID)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewForbiddenError("cash request is no longer pending")
		}

		if _, err := tx.Exec(ctx, cashRequestHistoryInsertQuery,
			history.HistoryID, history.CashRequestID, string(history.Action), history.ActorID, history.Comment, history.CreatedAt,
		); err != nil {
			return mapWriteError(err, "history of cash request "+m.CashRequestID)
		}
		return nil
	})
}

// DeleteCashRequest removes a pending request; items and history cascade.
func (r *PgxCashRequestRepository) DeleteCashRequest(ctx context.Context, projectID, cashRequestID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM cash_requests WHERE project_id = $1 AND cash_request_id = $2 AND status = $3;`,
		projectID, cashRequestID, string(domain.CashRequestPending))
	if err != nil {
		return mapWriteError(err, "cash request "+cashRequestID)
	}
	return expectOne(tag, "cash request "+cashRequestID)
}
