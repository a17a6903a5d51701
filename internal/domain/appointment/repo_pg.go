package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentflow/dentflow/internal/platform/apperr"
)

type appointmentRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentRepoPG(pool *pgxpool.Pool) Repository {
	return &appointmentRepoPG{pool: pool}
}

const appointmentCols = `id, patient_id, patient_name, date, time, duration,
	status, type, notes, created_by, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.PatientName, &a.Date, &a.Time,
		&a.Duration, &a.Status, &a.Type, &a.Notes,
		&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *appointmentRepoPG) classifyMiss(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM appointments WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return apperr.ErrUnauthorized
	}
	return apperr.ErrNotFound
}

func (r *appointmentRepoPG) collect(rows pgx.Rows) ([]*Appointment, error) {
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *appointmentRepoPG) List(ctx context.Context, ownerID string) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE created_by = $1 ORDER BY date DESC, time ASC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *appointmentRepoPG) ListByPatient(ctx context.Context, ownerID string, patientID uuid.UUID) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments
		 WHERE created_by = $1 AND patient_id = $2 ORDER BY date DESC, time ASC`,
		ownerID, patientID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE id = $1 AND created_by = $2`,
		id, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointments (id, patient_id, patient_name, date, time,
			duration, status, type, notes, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at, updated_at`,
		a.ID, a.PatientID, a.PatientName, a.Date, a.Time, a.Duration,
		a.Status, a.Type, a.Notes, a.CreatedBy).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *appointmentRepoPG) Update(ctx context.Context, ownerID string, id uuid.UUID, patch *Patch) (*Appointment, error) {
	set := "updated_at = NOW()"
	var args []interface{}
	idx := 1

	add := func(col string, v interface{}) {
		set += fmt.Sprintf(", %s = $%d", col, idx)
		args = append(args, v)
		idx++
	}

	if patch.Date != nil {
		add("date", *patch.Date)
	}
	if patch.Time != nil {
		add("time", *patch.Time)
	}
	if patch.Duration != nil {
		add("duration", *patch.Duration)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}

	query := fmt.Sprintf(`UPDATE appointments SET %s WHERE id = $%d AND created_by = $%d RETURNING `+appointmentCols,
		set, idx, idx+1)
	args = append(args, id, ownerID)

	a, err := scanAppointment(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepoPG) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM appointments WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id)
	}
	return nil
}
