package prescription

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dentflow/dentflow/internal/platform/apperr"
	"github.com/dentflow/dentflow/internal/platform/auth"
)

type Service struct {
	prescriptions Repository
}

func NewService(prescriptions Repository) *Service {
	return &Service{prescriptions: prescriptions}
}

func (s *Service) List(ctx context.Context, caller *auth.User) ([]*Prescription, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.prescriptions.List(ctx, caller.ID)
}

func (s *Service) ListByPatient(ctx context.Context, caller *auth.User, patientID uuid.UUID) ([]*Prescription, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.prescriptions.ListByPatient(ctx, caller.ID, patientID)
}

func (s *Service) Get(ctx context.Context, caller *auth.User, id uuid.UUID) (*Prescription, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.prescriptions.GetByID(ctx, caller.ID, id)
}

func (s *Service) Add(ctx context.Context, caller *auth.User, p *Prescription) error {
	if err := auth.Require(caller); err != nil {
		return err
	}
	if p.PatientID == uuid.Nil || p.PatientName == "" {
		return fmt.Errorf("%w: patientId and patientName are required", apperr.ErrValidation)
	}
	if p.Medication == "" || p.Dosage == "" {
		return fmt.Errorf("%w: medication and dosage are required", apperr.ErrValidation)
	}
	if p.Status == "" {
		p.Status = "active"
	}
	if !validStatuses[p.Status] {
		return fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, p.Status)
	}
	if p.PrescribedBy == "" {
		p.PrescribedBy = caller.Name
	}
	p.CreatedBy = caller.ID
	return s.prescriptions.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, caller *auth.User, id uuid.UUID, patch *Patch) (*Prescription, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	if patch.Status != nil && !validStatuses[*patch.Status] {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, *patch.Status)
	}
	if patch.Medication != nil && *patch.Medication == "" {
		return nil, fmt.Errorf("%w: medication cannot be empty", apperr.ErrValidation)
	}
	return s.prescriptions.Update(ctx, caller.ID, id, patch)
}

func (s *Service) Delete(ctx context.Context, caller *auth.User, id uuid.UUID) error {
	if err := auth.Require(caller); err != nil {
		return err
	}
	return s.prescriptions.Delete(ctx, caller.ID, id)
}

// Search filters the caller's prescriptions by medication or patient name.
func (s *Service) Search(ctx context.Context, caller *auth.User, term string) ([]*Prescription, error) {
	all, err := s.List(ctx, caller)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return all, nil
	}
	lower := strings.ToLower(term)
	var matched []*Prescription
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Medication), lower) ||
			strings.Contains(strings.ToLower(p.PatientName), lower) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
