package settings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dentflow/dentflow/internal/platform/apperr"
	"github.com/dentflow/dentflow/internal/platform/auth"
)

type mockRepo struct {
	rows map[string]*AppSettings
}

func newMockRepo() *mockRepo {
	return &mockRepo{rows: make(map[string]*AppSettings)}
}

func (m *mockRepo) Get(_ context.Context, ownerID string) (*AppSettings, error) {
	s, ok := m.rows[ownerID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockRepo) Create(_ context.Context, s *AppSettings) error {
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	m.rows[s.UserID] = s
	return nil
}

func (m *mockRepo) Save(_ context.Context, s *AppSettings) (*AppSettings, error) {
	if _, ok := m.rows[s.UserID]; !ok {
		return nil, apperr.ErrNotFound
	}
	s.UpdatedAt = time.Now()
	m.rows[s.UserID] = s
	return s, nil
}

func (m *mockRepo) UpdateCategory(_ context.Context, ownerID, category string, data []byte) (*AppSettings, error) {
	s, ok := m.rows[ownerID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	var err error
	switch category {
	case "clinic":
		err = json.Unmarshal(data, &s.Clinic)
	case "financial":
		err = json.Unmarshal(data, &s.Financial)
	case "staff":
		err = json.Unmarshal(data, &s.Staff)
	case "preferences":
		err = json.Unmarshal(data, &s.Preferences)
	}
	if err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Now()
	return s, nil
}

var alice = &auth.User{ID: "alice", Name: "Alice", Email: "alice@example.com"}

func TestGetOrCreateSynthesizesDefaults(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	got, err := svc.GetOrCreate(ctx, alice)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if got.Clinic.Name != "DentFlow Clinic" {
		t.Fatalf("Clinic.Name = %q, want DentFlow Clinic", got.Clinic.Name)
	}
	if got.Financial.TaxRate != "8.5" {
		t.Fatalf("TaxRate = %q, want 8.5", got.Financial.TaxRate)
	}
	if got.UserID != alice.ID {
		t.Fatalf("UserID = %q, want caller id", got.UserID)
	}

	// first read persisted the row; a second read returns the same one
	if _, ok := repo.rows[alice.ID]; !ok {
		t.Fatal("defaults were not persisted on first read")
	}
	again, err := svc.GetOrCreate(ctx, alice)
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if again.Staff.PrimaryDoctor != "Dr. Sarah Johnson" {
		t.Fatalf("PrimaryDoctor = %q", again.Staff.PrimaryDoctor)
	}
}

func TestUpdateCategory(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	payload := json.RawMessage(`{"name": "Bright Smiles", "email": "hello@brightsmiles.example"}`)
	got, err := svc.UpdateCategory(ctx, alice, "clinic", payload)
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if got.Clinic.Name != "Bright Smiles" {
		t.Fatalf("Clinic.Name = %q, want Bright Smiles", got.Clinic.Name)
	}
	// other sections keep their defaults
	if got.Financial.Currency != "USD" {
		t.Fatalf("Financial.Currency = %q, want USD", got.Financial.Currency)
	}
}

func TestUpdateCategoryUnknown(t *testing.T) {
	svc := NewService(newMockRepo())
	_, err := svc.UpdateCategory(context.Background(), alice, "branding", json.RawMessage(`{}`))
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("unknown category: got %v, want ErrValidation", err)
	}
}

func TestUpdateCategoryMalformedPayload(t *testing.T) {
	svc := NewService(newMockRepo())
	_, err := svc.UpdateCategory(context.Background(), alice, "clinic", json.RawMessage(`{"name": 42`))
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("malformed payload: got %v, want ErrValidation", err)
	}
}

func TestSaveReplacesAllSections(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	in := Defaults()
	in.Clinic.Name = "Bright Smiles"
	in.Staff.PrimaryDoctor = "Dr. Kim Patel"
	got, err := svc.Save(ctx, alice, &in)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got.Clinic.Name != "Bright Smiles" || got.Staff.PrimaryDoctor != "Dr. Kim Patel" {
		t.Fatalf("Save did not apply: %+v", got)
	}
}

func TestUnauthenticated(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.GetOrCreate(context.Background(), nil); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("GetOrCreate without caller: got %v, want ErrUnauthenticated", err)
	}
}
