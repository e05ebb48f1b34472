package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	"github.com/karyabangun/bizadmin/internal/models"
)

type PgxBillingRepository struct {
	BaseRepository
}

func newPgxBillingRepository(pool *pgxpool.Pool) portsrepo.BillingRepositoryFacade {
	return &PgxBillingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillingRepositoryFacade = (*PgxBillingRepository)(nil)

const billingSelectQuery = `
SELECT billing_id, project_id, company_id, invoice_number, billing_date, description,
       billing_value, down_payment_deduction, retention, tax_base, vat, withholding_tax,
       net_receivable, status, payment_date, retention_paid,
       created_at, created_by, last_updated_at, last_updated_by
FROM billings
`

func (r *PgxBillingRepository) getBillings(ctx context.Context, filter string, args ...any) ([]domain.Billing, error) {
	rows, err := collect[models.Billing](ctx, r.Pool, billingSelectQuery+filter, args...)
	if err != nil {
		return nil, readError(err, "billings")
	}
	billings := make([]domain.Billing, 0, len(rows))
	for _, row := range rows {
		b, err := models.ToDomainBilling(row)
		if err != nil {
			return nil, apperrors.NewAppError(500, "corrupt billing row", err)
		}
		billings = append(billings, b)
	}
	return billings, nil
}

func (r *PgxBillingRepository) FindBillingByID(ctx context.Context, projectID, billingID string) (*domain.Billing, error) {
	billings, err := r.getBillings(ctx, `WHERE project_id = $1 AND billing_id = $2`, projectID, billingID)
	if err != nil {
		return nil, err
	}
	if len(billings) == 0 {
		return nil, notFound("billing " + billingID)
	}
	return &billings[0], nil
}

func (r *PgxBillingRepository) ListBillingsByProject(ctx context.Context, projectID string) ([]domain.Billing, error) {
	return r.getBillings(ctx, `WHERE project_id = $1 ORDER BY billing_date, created_at, billing_id`, projectID)
}

func (r *PgxBillingRepository) SaveBilling(ctx context.Context, billing domain.Billing) error {
	m := models.ToModelBilling(billing)
	query := `
		INSERT INTO billings (
			billing_id, project_id, company_id, invoice_number, billing_date, description,
			billing_value, down_payment_deduction, retention, tax_base, vat, withholding_tax,
			net_receivable, status, payment_date, retention_paid,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BillingID, m.ProjectID, m.CompanyID, m.InvoiceNumber, m.BillingDate, m.Description,
		m.BillingValue, m.DownPaymentDeduction, m.Retention, m.TaxBase, m.VAT, m.WithholdingTax,
		m.NetReceivable, m.Status, m.PaymentDate, m.RetentionPaid,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "invoice "+m.InvoiceNumber)
	}
	return nil
}

func (r *PgxBillingRepository) UpdateBilling(ctx context.Context, billing domain.Billing) error {
	m := models.ToModelBilling(billing)
	query := `
		UPDATE billings
		SET invoice_number = $1, billing_date = $2, description = $3,
		    billing_value = $4, down_payment_deduction = $5, retention = $6, tax_base = $7,
		    vat = $8, withholding_tax = $9, net_receivable = $10,
		    last_updated_at = $11, last_updated_by = $12
		WHERE project_id = $13 AND billing_id = $14;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.InvoiceNumber, m.BillingDate, m.Description,
		m.BillingValue, m.DownPaymentDeduction, m.Retention, m.TaxBase,
		m.VAT, m.WithholdingTax, m.NetReceivable,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.ProjectID, m.BillingID,
	)
	if err != nil {
		return mapWriteError(err, "invoice "+m.InvoiceNumber)
	}
	return expectOne(tag, "billing "+m.BillingID)
}

func (r *PgxBillingRepository) UpdateBillingStatus(ctx context.Context, billing domain.Billing) error {
	m := models.ToModelBilling(billing)
	query := `
		UPDATE billings
		SET status = $1, payment_date = $2, retention_paid = $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE project_id = $6 AND billing_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Status, m.PaymentDate, m.RetentionPaid,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.ProjectID, m.BillingID,
	)
	if err != nil {
		return mapWriteError(err, "billing "+m.BillingID)
	}
	return expectOne(tag, "billing "+m.BillingID)
}

func (r *PgxBillingRepository) DeleteBilling(ctx context.Context, projectID, billingID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM billings WHERE project_id = $1 AND billing_id = $2;`, projectID, billingID)
	if err != nil {
		return mapWriteError(err, "billing "+billingID)
	}
	return expectOne(tag, "billing "+billingID)
}
