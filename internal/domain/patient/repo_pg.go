package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentflow/dentflow/internal/platform/apperr"
)

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) Repository {
	return &patientRepoPG{pool: pool}
}

const patientCols = `id, first_name, last_name, email, phone, date_of_birth,
	gender, address, city, state, zip, insurance_provider, insurance_id,
	allergies, medications, medical_conditions, family_history,
	surgical_history, blood_type, height, weight, notes,
	created_by, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone,
		&p.DateOfBirth, &p.Gender, &p.Address, &p.City, &p.State, &p.Zip,
		&p.InsuranceProvider, &p.InsuranceID, &p.Allergies, &p.Medications,
		&p.MedicalConditions, &p.FamilyHistory, &p.SurgicalHistory,
		&p.BloodType, &p.Height, &p.Weight, &p.Notes,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

// classifyMiss decides whether a zero-row owner-scoped statement failed
// because the row is missing or because it belongs to another owner.
func (r *patientRepoPG) classifyMiss(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM patients WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return apperr.ErrUnauthorized
	}
	return apperr.ErrNotFound
}

func (r *patientRepoPG) List(ctx context.Context, ownerID string) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients WHERE created_by = $1 ORDER BY last_name, first_name`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *patientRepoPG) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1 AND created_by = $2`,
		id, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (id, first_name, last_name, email, phone,
			date_of_birth, gender, address, city, state, zip,
			insurance_provider, insurance_id, allergies, medications,
			medical_conditions, family_history, surgical_history,
			blood_type, height, weight, notes, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
		RETURNING created_at, updated_at`,
		p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.DateOfBirth,
		p.Gender, p.Address, p.City, p.State, p.Zip, p.InsuranceProvider,
		p.InsuranceID, p.Allergies, p.Medications, p.MedicalConditions,
		p.FamilyHistory, p.SurgicalHistory, p.BloodType, p.Height, p.Weight,
		p.Notes, p.CreatedBy).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *patientRepoPG) Update(ctx context.Context, ownerID string, id uuid.UUID, patch *Patch) (*Patient, error) {
	set := "updated_at = NOW()"
	var args []interface{}
	idx := 1

	add := func(col string, v interface{}) {
		set += fmt.Sprintf(", %s = $%d", col, idx)
		args = append(args, v)
		idx++
	}

	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.DateOfBirth != nil {
		add("date_of_birth", *patch.DateOfBirth)
	}
	if patch.Gender != nil {
		add("gender", *patch.Gender)
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.City != nil {
		add("city", *patch.City)
	}
	if patch.State != nil {
		add("state", *patch.State)
	}
	if patch.Zip != nil {
		add("zip", *patch.Zip)
	}
	if patch.InsuranceProvider != nil {
		add("insurance_provider", *patch.InsuranceProvider)
	}
	if patch.InsuranceID != nil {
		add("insurance_id", *patch.InsuranceID)
	}
	if patch.Allergies != nil {
		add("allergies", *patch.Allergies)
	}
	if patch.Medications != nil {
		add("medications", *patch.Medications)
	}
	if patch.MedicalConditions != nil {
		add("medical_conditions", *patch.MedicalConditions)
	}
	if patch.FamilyHistory != nil {
		add("family_history", *patch.FamilyHistory)
	}
	if patch.SurgicalHistory != nil {
		add("surgical_history", *patch.SurgicalHistory)
	}
	if patch.BloodType != nil {
		add("blood_type", *patch.BloodType)
	}
	if patch.Height != nil {
		add("height", *patch.Height)
	}
	if patch.Weight != nil {
		add("weight", *patch.Weight)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}

	query := fmt.Sprintf(`UPDATE patients SET %s WHERE id = $%d AND created_by = $%d RETURNING `+patientCols,
		set, idx, idx+1)
	args = append(args, id, ownerID)

	p, err := scanPatient(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepoPG) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM patients WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id)
	}
	return nil
}
