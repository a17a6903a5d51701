package settings

import "context"

// Repository stores one settings row per owner. Get returns ErrNotFound for
// an owner with no row yet; the service turns that into a create.
type Repository interface {
	Get(ctx context.Context, ownerID string) (*AppSettings, error)
	Create(ctx context.Context, s *AppSettings) error
	Save(ctx context.Context, s *AppSettings) (*AppSettings, error)
	UpdateCategory(ctx context.Context, ownerID, category string, data []byte) (*AppSettings, error)
}
