package invoice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentflow/dentflow/internal/platform/apperr"
)

type invoiceRepoPG struct{ pool *pgxpool.Pool }

func NewInvoiceRepoPG(pool *pgxpool.Pool) Repository {
	return &invoiceRepoPG{pool: pool}
}

const invoiceCols = `id, invoice_number, patient_id, patient_name, date,
	due_date, items, subtotal, tax, discount, total, payment_status,
	payment_method, payment_date, notes, created_by, created_at, updated_at`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.PatientID,
		&inv.PatientName, &inv.Date, &inv.DueDate, &inv.Items, &inv.Subtotal,
		&inv.Tax, &inv.Discount, &inv.Total, &inv.PaymentStatus,
		&inv.PaymentMethod, &inv.PaymentDate, &inv.Notes,
		&inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt)
	return &inv, err
}

func (r *invoiceRepoPG) classifyMiss(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM invoices WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return apperr.ErrUnauthorized
	}
	return apperr.ErrNotFound
}

func (r *invoiceRepoPG) collect(rows pgx.Rows) ([]*Invoice, error) {
	defer rows.Close()
	var items []*Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}

func (r *invoiceRepoPG) List(ctx context.Context, ownerID string) ([]*Invoice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+invoiceCols+` FROM invoices WHERE created_by = $1 ORDER BY date DESC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *invoiceRepoPG) ListByPatient(ctx context.Context, ownerID string, patientID uuid.UUID) ([]*Invoice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+invoiceCols+` FROM invoices
		 WHERE created_by = $1 AND patient_id = $2 ORDER BY date DESC`,
		ownerID, patientID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *invoiceRepoPG) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*Invoice, error) {
	inv, err := scanInvoice(r.pool.QueryRow(ctx,
		`SELECT `+invoiceCols+` FROM invoices WHERE id = $1 AND created_by = $2`,
		id, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepoPG) Create(ctx context.Context, inv *Invoice) error {
	inv.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO invoices (id, invoice_number, patient_id, patient_name,
			date, due_date, items, subtotal, tax, discount, total,
			payment_status, payment_method, payment_date, notes, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING created_at, updated_at`,
		inv.ID, inv.InvoiceNumber, inv.PatientID, inv.PatientName, inv.Date,
		inv.DueDate, inv.Items, inv.Subtotal, inv.Tax, inv.Discount,
		inv.Total, inv.PaymentStatus, inv.PaymentMethod, inv.PaymentDate,
		inv.Notes, inv.CreatedBy).Scan(&inv.CreatedAt, &inv.UpdatedAt)
}

// Save writes back a fully merged record. Derived columns are written as
// computed by the service; the invoice number and creation stamps never
// change after Create.
func (r *invoiceRepoPG) Save(ctx context.Context, ownerID string, inv *Invoice) (*Invoice, error) {
	saved, err := scanInvoice(r.pool.QueryRow(ctx, `
		UPDATE invoices SET date = $1, due_date = $2, items = $3,
			subtotal = $4, tax = $5, discount = $6, total = $7,
			payment_status = $8, payment_method = $9, payment_date = $10,
			notes = $11, updated_at = NOW()
		WHERE id = $12 AND created_by = $13
		RETURNING `+invoiceCols,
		inv.Date, inv.DueDate, inv.Items, inv.Subtotal, inv.Tax,
		inv.Discount, inv.Total, inv.PaymentStatus, inv.PaymentMethod,
		inv.PaymentDate, inv.Notes, inv.ID, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMiss(ctx, inv.ID)
	}
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *invoiceRepoPG) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM invoices WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id)
	}
	return nil
}
