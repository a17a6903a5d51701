package prescription

import (
	"context"

	"github.com/google/uuid"
)

// Repository mediates all access to the prescriptions table; every method
// scopes its statement to the owner id.
type Repository interface {
	List(ctx context.Context, ownerID string) ([]*Prescription, error)
	ListByPatient(ctx context.Context, ownerID string, patientID uuid.UUID) ([]*Prescription, error)
	GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*Prescription, error)
	Create(ctx context.Context, p *Prescription) error
	Update(ctx context.Context, ownerID string, id uuid.UUID, patch *Patch) (*Prescription, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}
