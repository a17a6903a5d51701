package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Valid write-side values. Rows written before the enums were closed may
// carry other values; those are returned as-is on read but rejected on write.
var (
	validStatuses = map[string]bool{
		"scheduled": true,
		"confirmed": true,
		"completed": true,
		"cancelled": true,
	}
	validTypes = map[string]bool{
		"Regular Checkup": true,
		"Cleaning":        true,
		"Emergency":       true,
		"Consultation":    true,
		"Procedure":       true,
		"Follow-up":       true,
	}
)

// Appointment maps to the appointments table. Date and time are stored as
// strings (YYYY-MM-DD, HH:MM) so they compare lexicographically.
// PatientName is a display snapshot taken when the appointment is booked;
// it is not kept in sync with later patient edits.
type Appointment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patientId"`
	PatientName string    `db:"patient_name" json:"patientName"`
	Date        string    `db:"date" json:"date"`
	Time        string    `db:"time" json:"time"`
	Duration    string    `db:"duration" json:"duration"`
	Status      string    `db:"status" json:"status"`
	Type        string    `db:"type" json:"type"`
	Notes       *string   `db:"notes" json:"notes,omitempty"`
	CreatedBy   string    `db:"created_by" json:"createdBy"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Patch carries a partial update; nil fields are left untouched. The
// patientName snapshot is deliberately not patchable.
type Patch struct {
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Duration *string `json:"duration,omitempty"`
	Status   *string `json:"status,omitempty"`
	Type     *string `json:"type,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}
