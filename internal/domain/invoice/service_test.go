package invoice

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
	items map[uuid.UUID]*Invoice
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Invoice)}
}

func (m *mockRepo) miss(id uuid.UUID) error {
	if _, ok := m.items[id]; ok {
		return apperr.ErrUnauthorized
	}
	return apperr.ErrNotFound
}

func (m *mockRepo) List(_ context.Context, ownerID string) ([]*Invoice, error) {
	var out []*Invoice
	for _, inv := range m.items {
		if inv.CreatedBy == ownerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, ownerID string, patientID uuid.UUID) ([]*Invoice, error) {
	var out []*Invoice
	for _, inv := range m.items {
		if inv.CreatedBy == ownerID && inv.PatientID == patientID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (m *mockRepo) GetByID(_ context.Context, ownerID string, id uuid.UUID) (*Invoice, error) {
	inv, ok := m.items[id]
	if !ok || inv.CreatedBy != ownerID {
		return nil, m.miss(id)
	}
	cp := *inv
	return &cp, nil
}

func (m *mockRepo) Create(_ context.Context, inv *Invoice) error {
	inv.ID = uuid.New()
	inv.CreatedAt = time.Now()
	inv.UpdatedAt = inv.CreatedAt
	m.items[inv.ID] = inv
	return nil
}

func (m *mockRepo) Save(_ context.Context, ownerID string, inv *Invoice) (*Invoice, error) {
	cur, ok := m.items[inv.ID]
	if !ok || cur.CreatedBy != ownerID {
		return nil, m.miss(inv.ID)
	}
	inv.UpdatedAt = time.Now()
	m.items[inv.ID] = inv
	return inv, nil
}

func (m *mockRepo) Delete(_ context.Context, ownerID string, id uuid.UUID) error {
	inv, ok := m.items[id]
	if !ok || inv.CreatedBy != ownerID {
		return m.miss(id)
	}
	delete(m.items, id)
	return nil
}

// mockCounter hands out per-key sequence values like the storage-backed one.
type mockCounter struct {
	values map[string]int64
}

func newMockCounter() *mockCounter {
	return &mockCounter{values: make(map[string]int64)}
}

func (m *mockCounter) Next(_ context.Context, ownerID, key string) (int64, error) {
	k := ownerID + "/" + key
	m.values[k]++
	return m.values[k], nil
}

var (
	alice = &auth.User{ID: "alice", Name: "Alice", Email: "alice@example.com"}
	bob   = &auth.User{ID: "bob", Name: "Bob", Email: "bob@example.com"}
)

func newService() *Service {
	return NewService(newMockRepo(), newMockCounter())
}

func newInvoice() *Invoice {
	return &Invoice{
		PatientID:   uuid.New(),
		PatientName: "Jane Doe",
		Date:        "2026-08-29",
		DueDate:     "2026-09-28",
		Items: []Item{
			{Description: "Cleaning", Quantity: 2, UnitPrice: 50},
			{Description: "X-Ray", Quantity: 1, UnitPrice: 30},
		},
		Tax:      10,
		Discount: 5,
	}
}

func TestAddComputesTotals(t *testing.T) {
	svc := newService()
	inv := newInvoice()
	// caller-supplied totals must be discarded
	inv.Subtotal = 9999
	inv.Total = 9999
	inv.Items[0].Amount = 9999

	if err := svc.Add(context.Background(), alice, inv); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if inv.Items[0].Amount != 100 || inv.Items[1].Amount != 30 {
		t.Fatalf("item amounts = %v, %v; want 100, 30", inv.Items[0].Amount, inv.Items[1].Amount)
	}
	if inv.Subtotal != 130 {
		t.Fatalf("Subtotal = %v, want 130", inv.Subtotal)
	}
	if inv.Total != 138 {
		t.Fatalf("Total = %v, want 138", inv.Total)
	}
	if inv.PaymentStatus != "pending" {
		t.Fatalf("PaymentStatus = %q, want pending", inv.PaymentStatus)
	}
}

func TestNumbering(t *testing.T) {
	svc := newService()
	svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	}
	ctx := context.Background()

	// seven invoices already issued today
	for i := 0; i < 7; i++ {
		if err := svc.Add(ctx, alice, newInvoice()); err != nil {
			t.Fatalf("Add #%d: %v", i, err)
		}
	}

	num, err := svc.NextNumber(ctx, alice)
	if err != nil {
		t.Fatalf("NextNumber: %v", err)
	}
	if num != "INV-20240315-8" {
		t.Fatalf("NextNumber = %q, want INV-20240315-8", num)
	}

	// each owner has its own sequence
	num, err = svc.NextNumber(ctx, bob)
	if err != nil {
		t.Fatalf("NextNumber: %v", err)
	}
	if num != "INV-20240315-1" {
		t.Fatalf("NextNumber for second owner = %q, want INV-20240315-1", num)
	}
}

func TestUpdateRecomputesTotals(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	inv := newInvoice()
	if err := svc.Add(ctx, alice, inv); err != nil {
		t.Fatalf("Add: %v", err)
	}

	newItems := []Item{{Description: "Filling", Quantity: 1, UnitPrice: 200}}
	zero := 0.0
	got, err := svc.Update(ctx, alice, inv.ID, &Patch{Items: &newItems, Discount: &zero})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Subtotal != 200 {
		t.Fatalf("Subtotal = %v, want 200", got.Subtotal)
	}
	if got.Total != 220 { // tax still 10%
		t.Fatalf("Total = %v, want 220", got.Total)
	}
	if got.InvoiceNumber != inv.InvoiceNumber {
		t.Fatalf("invoice number changed on update: %q -> %q", inv.InvoiceNumber, got.InvoiceNumber)
	}
}

func TestAddValidation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	inv := newInvoice()
	inv.Items = nil
	if err := svc.Add(ctx, alice, inv); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("Add without items: got %v, want ErrValidation", err)
	}

	inv = newInvoice()
	inv.Items[0].Quantity = 0
	if err := svc.Add(ctx, alice, inv); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("Add with zero quantity: got %v, want ErrValidation", err)
	}

	inv = newInvoice()
	inv.PaymentStatus = "written-off"
	if err := svc.Add(ctx, alice, inv); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("Add with unknown status: got %v, want ErrValidation", err)
	}
}

func TestUnpaid(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	statuses := []string{"pending", "paid", "overdue", "partial", "cancelled"}
	for _, st := range statuses {
		inv := newInvoice()
		inv.PaymentStatus = st
		if err := svc.Add(ctx, alice, inv); err != nil {
			t.Fatalf("Add(%s): %v", st, err)
		}
	}

	got, err := svc.Unpaid(ctx, alice)
	if err != nil {
		t.Fatalf("Unpaid: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Unpaid returned %d invoices, want 3", len(got))
	}
	for _, inv := range got {
		if inv.PaymentStatus == "paid" || inv.PaymentStatus == "cancelled" {
			t.Fatalf("Unpaid contains %q invoice", inv.PaymentStatus)
		}
	}
}

func TestCrossTenant(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	inv := newInvoice()
	if err := svc.Add(ctx, alice, inv); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Get(ctx, bob, inv.ID); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("Get as other owner: got %v, want ErrUnauthorized", err)
	}
	paid := "paid"
	if _, err := svc.Update(ctx, bob, inv.ID, &Patch{PaymentStatus: &paid}); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("Update as other owner: got %v, want ErrUnauthorized", err)
	}
}

func TestRoundingToCents(t *testing.T) {
	svc := newService()
	inv := &Invoice{
		PatientID:   uuid.New(),
		PatientName: "Jane Doe",
		Items:       []Item{{Description: "Partial unit", Quantity: 3, UnitPrice: 33.333}},
		Tax:         7.25,
	}
	if err := svc.Add(context.Background(), alice, inv); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if inv.Items[0].Amount != 100 {
		t.Fatalf("Amount = %v, want 100 (rounded)", inv.Items[0].Amount)
	}
	if inv.Total != 107.25 {
		t.Fatalf("Total = %v, want 107.25", inv.Total)
	}
}
