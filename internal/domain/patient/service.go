package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dentflow/dentflow/internal/platform/apperr"
	"github.com/dentflow/dentflow/internal/platform/auth"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) List(ctx context.Context, caller *auth.User) ([]*Patient, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.patients.List(ctx, caller.ID)
}

func (s *Service) Get(ctx context.Context, caller *auth.User, id uuid.UUID) (*Patient, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.patients.GetByID(ctx, caller.ID, id)
}

func (s *Service) Add(ctx context.Context, caller *auth.User, p *Patient) error {
	if err := auth.Require(caller); err != nil {
		return err
	}
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("%w: firstName and lastName are required", apperr.ErrValidation)
	}
	p.CreatedBy = caller.ID
	return s.patients.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, caller *auth.User, id uuid.UUID, patch *Patch) (*Patient, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	if patch.FirstName != nil && *patch.FirstName == "" {
		return nil, fmt.Errorf("%w: firstName cannot be empty", apperr.ErrValidation)
	}
	if patch.LastName != nil && *patch.LastName == "" {
		return nil, fmt.Errorf("%w: lastName cannot be empty", apperr.ErrValidation)
	}
	return s.patients.Update(ctx, caller.ID, id, patch)
}

func (s *Service) Delete(ctx context.Context, caller *auth.User, id uuid.UUID) error {
	if err := auth.Require(caller); err != nil {
		return err
	}
	return s.patients.Delete(ctx, caller.ID, id)
}

// Search filters the caller's patients by name, email, or phone. The owned
// set is small and unpaginated, so the filter runs in memory.
func (s *Service) Search(ctx context.Context, caller *auth.User, term string) ([]*Patient, error) {
	patients, err := s.List(ctx, caller)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return patients, nil
	}
	lower := strings.ToLower(term)
	var matched []*Patient
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.FirstName), lower) ||
			strings.Contains(strings.ToLower(p.LastName), lower) ||
			strings.Contains(strings.ToLower(p.Email), lower) ||
			strings.Contains(p.Phone, term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
