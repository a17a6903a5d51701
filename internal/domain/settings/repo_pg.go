package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentflow/dentflow/internal/platform/apperr"
)

type settingsRepoPG struct{ pool *pgxpool.Pool }

func NewSettingsRepoPG(pool *pgxpool.Pool) Repository {
	return &settingsRepoPG{pool: pool}
}

const settingsCols = `clinic, financial, staff, preferences, user_id, created_at, updated_at`

func scanSettings(row pgx.Row) (*AppSettings, error) {
	var s AppSettings
	err := row.Scan(&s.Clinic, &s.Financial, &s.Staff, &s.Preferences,
		&s.UserID, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *settingsRepoPG) Get(ctx context.Context, ownerID string) (*AppSettings, error) {
	s, err := scanSettings(r.pool.QueryRow(ctx,
		`SELECT `+settingsCols+` FROM settings WHERE user_id = $1`, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *settingsRepoPG) Create(ctx context.Context, s *AppSettings) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO settings (user_id, clinic, financial, staff, preferences)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at, updated_at`,
		s.UserID, s.Clinic, s.Financial, s.Staff,
		s.Preferences).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *settingsRepoPG) Save(ctx context.Context, s *AppSettings) (*AppSettings, error) {
	saved, err := scanSettings(r.pool.QueryRow(ctx, `
		UPDATE settings SET clinic = $1, financial = $2, staff = $3,
			preferences = $4, updated_at = NOW()
		WHERE user_id = $5
		RETURNING `+settingsCols,
		s.Clinic, s.Financial, s.Staff, s.Preferences, s.UserID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// UpdateCategory replaces a single section column. The category name has
// been validated by the service, never interpolated from user input raw.
func (r *settingsRepoPG) UpdateCategory(ctx context.Context, ownerID, category string, data []byte) (*AppSettings, error) {
	s, err := scanSettings(r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE settings SET %s = $1, updated_at = NOW()
		WHERE user_id = $2
		RETURNING `+settingsCols, category),
		data, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
