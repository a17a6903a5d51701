package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository mediates all access to the patients table. Every method takes
// the owner id and bakes it into the underlying statement; there is no
// fetch-then-compare ownership check in application code.
type Repository interface {
	List(ctx context.Context, ownerID string) ([]*Patient, error)
	GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*Patient, error)
	Create(ctx context.Context, p *Patient) error
	Update(ctx context.Context, ownerID string, id uuid.UUID, patch *Patch) (*Patient, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}
