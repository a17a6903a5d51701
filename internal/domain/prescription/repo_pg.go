package prescription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentflow/dentflow/internal/platform/apperr"
)

type prescriptionRepoPG struct{ pool *pgxpool.Pool }

func NewPrescriptionRepoPG(pool *pgxpool.Pool) Repository {
	return &prescriptionRepoPG{pool: pool}
}

const prescriptionCols = `id, patient_id, patient_name, medication, dosage,
	frequency, duration, start_date, end_date, instructions, status,
	prescribed_by, notes, created_by, created_at, updated_at`

func scanPrescription(row pgx.Row) (*Prescription, error) {
	var p Prescription
	err := row.Scan(&p.ID, &p.PatientID, &p.PatientName, &p.Medication,
		&p.Dosage, &p.Frequency, &p.Duration, &p.StartDate, &p.EndDate,
		&p.Instructions, &p.Status, &p.PrescribedBy, &p.Notes,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *prescriptionRepoPG) classifyMiss(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM prescriptions WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return apperr.ErrUnauthorized
	}
	return apperr.ErrNotFound
}

func (r *prescriptionRepoPG) collect(rows pgx.Rows) ([]*Prescription, error) {
	defer rows.Close()
	var items []*Prescription
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *prescriptionRepoPG) List(ctx context.Context, ownerID string) ([]*Prescription, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+prescriptionCols+` FROM prescriptions WHERE created_by = $1 ORDER BY created_at DESC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *prescriptionRepoPG) ListByPatient(ctx context.Context, ownerID string, patientID uuid.UUID) ([]*Prescription, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+prescriptionCols+` FROM prescriptions
		 WHERE created_by = $1 AND patient_id = $2 ORDER BY created_at DESC`,
		ownerID, patientID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *prescriptionRepoPG) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*Prescription, error) {
	p, err := scanPrescription(r.pool.QueryRow(ctx,
		`SELECT `+prescriptionCols+` FROM prescriptions WHERE id = $1 AND created_by = $2`,
		id, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *prescriptionRepoPG) Create(ctx context.Context, p *Prescription) error {
	p.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO prescriptions (id, patient_id, patient_name, medication,
			dosage, frequency, duration, start_date, end_date, instructions,
			status, prescribed_by, notes, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING created_at, updated_at`,
		p.ID, p.PatientID, p.PatientName, p.Medication, p.Dosage, p.Frequency,
		p.Duration, p.StartDate, p.EndDate, p.Instructions, p.Status,
		p.PrescribedBy, p.Notes, p.CreatedBy).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *prescriptionRepoPG) Update(ctx context.Context, ownerID string, id uuid.UUID, patch *Patch) (*Prescription, error) {
	set := "updated_at = NOW()"
	var args []interface{}
	idx := 1

	add := func(col string, v interface{}) {
		set += fmt.Sprintf(", %s = $%d", col, idx)
		args = append(args, v)
		idx++
	}

	if patch.Medication != nil {
		add("medication", *patch.Medication)
	}
	if patch.Dosage != nil {
		add("dosage", *patch.Dosage)
	}
	if patch.Frequency != nil {
		add("frequency", *patch.Frequency)
	}
	if patch.Duration != nil {
		add("duration", *patch.Duration)
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		add("end_date", *patch.EndDate)
	}
	if patch.Instructions != nil {
		add("instructions", *patch.Instructions)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.PrescribedBy != nil {
		add("prescribed_by", *patch.PrescribedBy)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}

	query := fmt.Sprintf(`UPDATE prescriptions SET %s WHERE id = $%d AND created_by = $%d RETURNING `+prescriptionCols,
		set, idx, idx+1)
	args = append(args, id, ownerID)

	p, err := scanPrescription(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *prescriptionRepoPG) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM prescriptions WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id)
	}
	return nil
}
