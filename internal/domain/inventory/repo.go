package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Repository mediates all access to the inventory table; every method
// scopes its statement to the owner id.
type Repository interface {
	List(ctx context.Context, ownerID string) ([]*Item, error)
	GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*Item, error)
	Create(ctx context.Context, it *Item) error
	Update(ctx context.Context, ownerID string, id uuid.UUID, patch *Patch) (*Item, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error

	// AdjustQuantity applies a signed stock delta in a single statement
	// guarded by quantity + delta >= 0, so a consume can never drive the
	// level negative. When restockDate is non-empty the last_restock column
	// is set to it.
	AdjustQuantity(ctx context.Context, ownerID string, id uuid.UUID, delta int, restockDate string) (*Item, error)
}
