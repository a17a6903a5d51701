package prescription

import (
	"time"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	"active":    true,
	"completed": true,
	"cancelled": true,
}

// Prescription maps to the prescriptions table. PatientName is a display
// snapshot taken when the prescription is written.
type Prescription struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientID    uuid.UUID `db:"patient_id" json:"patientId"`
	PatientName  string    `db:"patient_name" json:"patientName"`
	Medication   string    `db:"medication" json:"medication"`
	Dosage       string    `db:"dosage" json:"dosage"`
	Frequency    string    `db:"frequency" json:"frequency"`
	Duration     string    `db:"duration" json:"duration"`
	StartDate    string    `db:"start_date" json:"startDate"`
	EndDate      *string   `db:"end_date" json:"endDate,omitempty"`
	Instructions string    `db:"instructions" json:"instructions"`
	Status       string    `db:"status" json:"status"`
	PrescribedBy string    `db:"prescribed_by" json:"prescribedBy"`
	Notes        *string   `db:"notes" json:"notes,omitempty"`
	CreatedBy    string    `db:"created_by" json:"createdBy"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Medication   *string `json:"medication,omitempty"`
	Dosage       *string `json:"dosage,omitempty"`
	Frequency    *string `json:"frequency,omitempty"`
	Duration     *string `json:"duration,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	Status       *string `json:"status,omitempty"`
	PrescribedBy *string `json:"prescribedBy,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}
