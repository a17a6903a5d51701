package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dentflow/dentflow/internal/platform/apperr"
	"github.com/dentflow/dentflow/internal/platform/auth"
)

type mockRepo struct {
	messages []*Message
	feedback []*Feedback
}

func (m *mockRepo) AddMessage(_ context.Context, msg *Message) error {
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *mockRepo) AddFeedback(_ context.Context, f *Feedback) error {
	f.ID = uuid.New()
	f.CreatedAt = time.Now()
	m.feedback = append(m.feedback, f)
	return nil
}

func TestAddMessageAnonymous(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	m := &Message{
		Name:    "Pat Visitor",
		Email:   "pat@example.com",
		Subject: "Question about hours",
		Body:    "Are you open on Saturdays?",
	}
	if err := svc.AddMessage(context.Background(), nil, m); err != nil {
		t.Fatalf("AddMessage: %v", err)
	}
	if m.Status != "new" {
		t.Fatalf("Status = %q, want new", m.Status)
	}
	if m.UserID != nil {
		t.Fatal("anonymous message should have no user id")
	}
}

func TestAddMessageRecordsSignedInSender(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	caller := &auth.User{ID: "alice", Email: "alice@example.com"}

	m := &Message{Name: "Alice", Email: "alice@example.com", Subject: "Billing", Body: "Invoice question"}
	if err := svc.AddMessage(context.Background(), caller, m); err != nil {
		t.Fatalf("AddMessage: %v", err)
	}
	if m.UserID == nil || *m.UserID != "alice" {
		t.Fatalf("UserID = %v, want alice", m.UserID)
	}
}

func TestAddMessageValidation(t *testing.T) {
	svc := NewService(&mockRepo{})
	cases := []*Message{
		{Email: "pat@example.com", Subject: "s", Body: "b"},
		{Name: "Pat", Email: "not-an-email", Subject: "s", Body: "b"},
		{Name: "Pat", Email: "pat@example.com", Body: "b"},
	}
	for i, m := range cases {
		if err := svc.AddMessage(context.Background(), nil, m); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("case %d: got %v, want ErrValidation", i, err)
		}
	}
}

func TestAddFeedback(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	caller := &auth.User{ID: "alice", Email: "alice@example.com"}

	f := &Feedback{Body: "Love the new invoice view"}
	if err := svc.AddFeedback(context.Background(), caller, f); err != nil {
		t.Fatalf("AddFeedback: %v", err)
	}
	if f.UserEmail == nil || *f.UserEmail != "alice@example.com" {
		t.Fatalf("UserEmail = %v", f.UserEmail)
	}

	empty := &Feedback{Body: "   "}
	if err := svc.AddFeedback(context.Background(), nil, empty); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("blank feedback: got %v, want ErrValidation", err)
	}
}
