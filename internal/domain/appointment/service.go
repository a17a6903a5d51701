package appointment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dentflow/dentflow/internal/platform/apperr"
	"github.com/dentflow/dentflow/internal/platform/auth"
)

type Service struct {
	appointments Repository
	now          func() time.Time
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments, now: time.Now}
}

func (s *Service) List(ctx context.Context, caller *auth.User) ([]*Appointment, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.appointments.List(ctx, caller.ID)
}

func (s *Service) ListByPatient(ctx context.Context, caller *auth.User, patientID uuid.UUID) ([]*Appointment, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.appointments.ListByPatient(ctx, caller.ID, patientID)
}

func (s *Service) Get(ctx context.Context, caller *auth.User, id uuid.UUID) (*Appointment, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.appointments.GetByID(ctx, caller.ID, id)
}

func (s *Service) Add(ctx context.Context, caller *auth.User, a *Appointment) error {
	if err := auth.Require(caller); err != nil {
		return err
	}
	if a.PatientID == uuid.Nil || a.PatientName == "" {
		return fmt.Errorf("%w: patientId and patientName are required", apperr.ErrValidation)
	}
	if a.Date == "" || a.Time == "" {
		return fmt.Errorf("%w: date and time are required", apperr.ErrValidation)
	}
	if a.Status == "" {
		a.Status = "scheduled"
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, a.Status)
	}
	if !validTypes[a.Type] {
		return fmt.Errorf("%w: unknown appointment type %q", apperr.ErrValidation, a.Type)
	}
	a.CreatedBy = caller.ID
	return s.appointments.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, caller *auth.User, id uuid.UUID, patch *Patch) (*Appointment, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	if patch.Status != nil && !validStatuses[*patch.Status] {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, *patch.Status)
	}
	if patch.Type != nil && !validTypes[*patch.Type] {
		return nil, fmt.Errorf("%w: unknown appointment type %q", apperr.ErrValidation, *patch.Type)
	}
	return s.appointments.Update(ctx, caller.ID, id, patch)
}

func (s *Service) Delete(ctx context.Context, caller *auth.User, id uuid.UUID) error {
	if err := auth.Require(caller); err != nil {
		return err
	}
	return s.appointments.Delete(ctx, caller.ID, id)
}

// Upcoming returns the caller's next appointments: not cancelled and strictly
// in the future, ordered soonest first, truncated to limit. Lists are
// unpaginated and small, so the filter runs in memory over the owned set.
func (s *Service) Upcoming(ctx context.Context, caller *auth.User, limit int) ([]*Appointment, error) {
	all, err := s.List(ctx, caller)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	var upcoming []*Appointment
	for _, a := range all {
		if a.Status == "cancelled" {
			continue
		}
		if a.Date > today || (a.Date == today && a.Time > clock) {
			upcoming = append(upcoming, a)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].Time < upcoming[j].Time
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}
