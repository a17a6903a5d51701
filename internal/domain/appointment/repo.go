package appointment

import (
	"context"

	"github.com/google/uuid"
)

// Repository mediates all access to the appointments table; every method
// scopes its statement to the owner id.
type Repository interface {
	List(ctx context.Context, ownerID string) ([]*Appointment, error)
	ListByPatient(ctx context.Context, ownerID string, patientID uuid.UUID) ([]*Appointment, error)
	GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*Appointment, error)
	Create(ctx context.Context, a *Appointment) error
	Update(ctx context.Context, ownerID string, id uuid.UUID, patch *Patch) (*Appointment, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}
