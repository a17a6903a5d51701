package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. JSON field names preserve the original
// document layout so existing clients keep working.
type Patient struct {
	ID                uuid.UUID `db:"id" json:"id"`
	FirstName         string    `db:"first_name" json:"firstName"`
	LastName          string    `db:"last_name" json:"lastName"`
	Email             string    `db:"email" json:"email"`
	Phone             string    `db:"phone" json:"phone"`
	DateOfBirth       string    `db:"date_of_birth" json:"dateOfBirth"`
	Gender            string    `db:"gender" json:"gender"`
	Address           string    `db:"address" json:"address"`
	City              string    `db:"city" json:"city"`
	State             string    `db:"state" json:"state"`
	Zip               string    `db:"zip" json:"zip"`
	InsuranceProvider *string   `db:"insurance_provider" json:"insuranceProvider,omitempty"`
	InsuranceID       *string   `db:"insurance_id" json:"insuranceId,omitempty"`
	Allergies         *string   `db:"allergies" json:"allergies,omitempty"`
	Medications       *string   `db:"medications" json:"medications,omitempty"`
	MedicalConditions *string   `db:"medical_conditions" json:"medicalConditions,omitempty"`
	FamilyHistory     *string   `db:"family_history" json:"familyHistory,omitempty"`
	SurgicalHistory   *string   `db:"surgical_history" json:"surgicalHistory,omitempty"`
	BloodType         *string   `db:"blood_type" json:"bloodType,omitempty"`
	Height            *string   `db:"height" json:"height,omitempty"`
	Weight            *string   `db:"weight" json:"weight,omitempty"`
	Notes             *string   `db:"notes" json:"notes,omitempty"`
	CreatedBy         string    `db:"created_by" json:"createdBy"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

// FullName returns the display name used on printable artifacts.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	FirstName         *string `json:"firstName,omitempty"`
	LastName          *string `json:"lastName,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	DateOfBirth       *string `json:"dateOfBirth,omitempty"`
	Gender            *string `json:"gender,omitempty"`
	Address           *string `json:"address,omitempty"`
	City              *string `json:"city,omitempty"`
	State             *string `json:"state,omitempty"`
	Zip               *string `json:"zip,omitempty"`
	InsuranceProvider *string `json:"insuranceProvider,omitempty"`
	InsuranceID       *string `json:"insuranceId,omitempty"`
	Allergies         *string `json:"allergies,omitempty"`
	Medications       *string `json:"medications,omitempty"`
	MedicalConditions *string `json:"medicalConditions,omitempty"`
	FamilyHistory     *string `json:"familyHistory,omitempty"`
	SurgicalHistory   *string `json:"surgicalHistory,omitempty"`
	BloodType         *string `json:"bloodType,omitempty"`
	Height            *string `json:"height,omitempty"`
	Weight            *string `json:"weight,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}
