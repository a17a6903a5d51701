package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dentflow/dentflow/internal/platform/apperr"
	"github.com/dentflow/dentflow/internal/platform/auth"
)

type Service struct {
	settings Repository
}

func NewService(settings Repository) *Service {
	return &Service{settings: settings}
}

// GetOrCreate returns the caller's settings, synthesizing and persisting
// the default template on first read.
func (s *Service) GetOrCreate(ctx context.Context, caller *auth.User) (*AppSettings, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	existing, err := s.settings.Get(ctx, caller.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	fresh := Defaults()
	fresh.UserID = caller.ID
	if err := s.settings.Create(ctx, &fresh); err != nil {
		return nil, err
	}
	return &fresh, nil
}

// Save replaces all four sections at once.
func (s *Service) Save(ctx context.Context, caller *auth.User, in *AppSettings) (*AppSettings, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	// make sure the row exists before writing back
	if _, err := s.GetOrCreate(ctx, caller); err != nil {
		return nil, err
	}
	in.UserID = caller.ID
	return s.settings.Save(ctx, in)
}

// UpdateCategory replaces exactly one section. The payload must decode into
// that section's shape; unknown categories are rejected.
func (s *Service) UpdateCategory(ctx context.Context, caller *auth.User, category string, payload json.RawMessage) (*AppSettings, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}

	var section interface{}
	switch category {
	case "clinic":
		section = &ClinicSettings{}
	case "financial":
		section = &FinancialSettings{}
	case "staff":
		section = &StaffSettings{}
	case "preferences":
		section = &PreferenceSettings{}
	default:
		return nil, fmt.Errorf("%w: unknown settings category %q", apperr.ErrValidation, category)
	}

	if err := json.Unmarshal(payload, section); err != nil {
		return nil, fmt.Errorf("%w: malformed %s settings: %v", apperr.ErrValidation, category, err)
	}
	data, err := json.Marshal(section)
	if err != nil {
		return nil, err
	}

	if _, err := s.GetOrCreate(ctx, caller); err != nil {
		return nil, err
	}
	return s.settings.UpdateCategory(ctx, caller.ID, category, data)
}
