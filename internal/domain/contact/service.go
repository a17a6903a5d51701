package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/dentflow/dentflow/internal/platform/apperr"
	"github.com/dentflow/dentflow/internal/platform/auth"
)

type Service struct {
	contacts Repository
}

func NewService(contacts Repository) *Service {
	return &Service{contacts: contacts}
}

// AddMessage accepts a contact-page submission. No caller is required; a
// signed-in sender is recorded when present.
func (s *Service) AddMessage(ctx context.Context, caller *auth.User, m *Message) error {
	if m.Name == "" || m.Email == "" {
		return fmt.Errorf("%w: name and email are required", apperr.ErrValidation)
	}
	if !strings.Contains(m.Email, "@") {
		return fmt.Errorf("%w: invalid email address", apperr.ErrValidation)
	}
	if m.Subject == "" || m.Body == "" {
		return fmt.Errorf("%w: subject and message are required", apperr.ErrValidation)
	}
	m.Status = "new"
	if caller != nil && caller.ID != "" {
		m.UserID = &caller.ID
	}
	return s.contacts.AddMessage(ctx, m)
}

// AddFeedback accepts a footer feedback note.
func (s *Service) AddFeedback(ctx context.Context, caller *auth.User, f *Feedback) error {
	if strings.TrimSpace(f.Body) == "" {
		return fmt.Errorf("%w: message is required", apperr.ErrValidation)
	}
	if caller != nil && caller.ID != "" {
		f.UserID = &caller.ID
		if caller.Email != "" {
			f.UserEmail = &caller.Email
		}
	}
	return s.contacts.AddFeedback(ctx, f)
}
