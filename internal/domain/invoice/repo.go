package invoice

import (
	"context"

	"github.com/google/uuid"
)

// Repository mediates all access to the invoices table; every method scopes
// its statement to the owner id. Update takes the fully merged, recomputed
// record rather than the raw patch because totals are derived state.
type Repository interface {
	List(ctx context.Context, ownerID string) ([]*Invoice, error)
	ListByPatient(ctx context.Context, ownerID string, patientID uuid.UUID) ([]*Invoice, error)
	GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*Invoice, error)
	Create(ctx context.Context, inv *Invoice) error
	Save(ctx context.Context, ownerID string, inv *Invoice) (*Invoice, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}
