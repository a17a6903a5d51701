package inventory

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
	items map[uuid.UUID]*Item
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uuid.UUID]*Item)}
}

func (m *mockRepo) miss(id uuid.UUID) error {
	if _, ok := m.items[id]; ok {
		return apperr.ErrUnauthorized
	}
	return apperr.ErrNotFound
}

func (m *mockRepo) List(_ context.Context, ownerID string) ([]*Item, error) {
	var out []*Item
	for _, it := range m.items {
		if it.CreatedBy == ownerID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockRepo) GetByID(_ context.Context, ownerID string, id uuid.UUID) (*Item, error) {
	it, ok := m.items[id]
	if !ok || it.CreatedBy != ownerID {
		return nil, m.miss(id)
	}
	return it, nil
}

func (m *mockRepo) Create(_ context.Context, it *Item) error {
	it.ID = uuid.New()
	it.CreatedAt = time.Now()
	it.UpdatedAt = it.CreatedAt
	m.items[it.ID] = it
	return nil
}

func (m *mockRepo) Update(_ context.Context, ownerID string, id uuid.UUID, patch *Patch) (*Item, error) {
	it, ok := m.items[id]
	if !ok || it.CreatedBy != ownerID {
		return nil, m.miss(id)
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Category != nil {
		it.Category = *patch.Category
	}
	if patch.MinQuantity != nil {
		it.MinQuantity = *patch.MinQuantity
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	it.UpdatedAt = time.Now()
	return it, nil
}

func (m *mockRepo) Delete(_ context.Context, ownerID string, id uuid.UUID) error {
	it, ok := m.items[id]
	if !ok || it.CreatedBy != ownerID {
		return m.miss(id)
	}
	delete(m.items, id)
	return nil
}

func (m *mockRepo) AdjustQuantity(_ context.Context, ownerID string, id uuid.UUID, delta int, restockDate string) (*Item, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	if it.CreatedBy != ownerID {
		return nil, apperr.ErrUnauthorized
	}
	if it.Quantity+delta < 0 {
		return nil, errors.Join(apperr.ErrValidation, errors.New("insufficient stock"))
	}
	it.Quantity += delta
	if restockDate != "" {
		it.LastRestock = restockDate
	}
	it.UpdatedAt = time.Now()
	return it, nil
}

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

func newItem() *Item {
	return &Item{
		Name:        "Nitrile Gloves",
		Category:    "Consumables",
		Quantity:    10,
		Unit:        "Box",
		MinQuantity: 5,
		Price:       12.99,
		Supplier:    "DentSupply Co",
	}
}

func TestRestock(t *testing.T) {
	svc := newService()
	svc.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}
	ctx := context.Background()

	it := newItem()
	it.LastRestock = "2026-08-01"
	if err := svc.Add(ctx, alice, it); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := svc.Restock(ctx, alice, it.ID, 3)
	if err != nil {
		t.Fatalf("Restock: %v", err)
	}
	if got.Quantity != 13 {
		t.Fatalf("Quantity = %d, want 13", got.Quantity)
	}
	if got.LastRestock != "2026-08-29" {
		t.Fatalf("LastRestock = %q, want 2026-08-29", got.LastRestock)
	}
	if got.LowStock() {
		t.Fatal("item should not be low-stock after restock")
	}
}

func TestConsumeGuardsAgainstNegativeStock(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	it := newItem()
	if err := svc.Add(ctx, alice, it); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := svc.Consume(ctx, alice, it.ID, 4)
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if got.Quantity != 6 {
		t.Fatalf("Quantity = %d, want 6", got.Quantity)
	}

	if _, err := svc.Consume(ctx, alice, it.ID, 7); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("over-consume: got %v, want ErrValidation", err)
	}
	// failed consume must not change the level
	cur, err := svc.Get(ctx, alice, it.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cur.Quantity != 6 {
		t.Fatalf("Quantity after failed consume = %d, want 6", cur.Quantity)
	}
}

func TestAdjustRejectsNonPositiveQty(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	it := newItem()
	if err := svc.Add(ctx, alice, it); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Restock(ctx, alice, it.ID, 0); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("Restock(0): got %v, want ErrValidation", err)
	}
	if _, err := svc.Consume(ctx, alice, it.ID, -2); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("Consume(-2): got %v, want ErrValidation", err)
	}
}

func TestNextSKUSequence(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	// three consumables already hold CON-0001..0003
	for i := 0; i < 3; i++ {
		it := newItem()
		if err := svc.Add(ctx, alice, it); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	sku, err := svc.NextSKU(ctx, alice, "Consumables")
	if err != nil {
		t.Fatalf("NextSKU: %v", err)
	}
	if sku != "CON-0004" {
		t.Fatalf("NextSKU = %q, want CON-0004", sku)
	}

	// a different category starts its own sequence
	sku, err = svc.NextSKU(ctx, alice, "PPE")
	if err != nil {
		t.Fatalf("NextSKU: %v", err)
	}
	if sku != "PPE-0001" {
		t.Fatalf("NextSKU(PPE) = %q, want PPE-0001", sku)
	}

	if _, err := svc.NextSKU(ctx, alice, "Snacks"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("NextSKU with unknown category: got %v, want ErrValidation", err)
	}
}

func TestLowStock(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	ok := newItem() // 10 on hand, min 5
	low := newItem()
	low.Name = "Anesthetic Carpules"
	low.Category = "Anesthetics"
	low.Quantity = 5
	low.MinQuantity = 5
	for _, it := range []*Item{ok, low} {
		if err := svc.Add(ctx, alice, it); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := svc.LowStock(ctx, alice)
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Anesthetic Carpules" {
		t.Fatalf("LowStock returned %d items", len(got))
	}
}

func TestExpiring(t *testing.T) {
	svc := newService()
	svc.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}
	ctx := context.Background()

	soon := "2026-09-10"
	far := "2027-01-01"
	past := "2026-08-01"

	a := newItem()
	a.Name = "Expiring Soon"
	a.ExpiryDate = &soon
	b := newItem()
	b.Name = "Long Shelf Life"
	b.ExpiryDate = &far
	c := newItem()
	c.Name = "Already Expired"
	c.ExpiryDate = &past
	d := newItem() // no expiry at all
	for _, it := range []*Item{a, b, c, d} {
		if err := svc.Add(ctx, alice, it); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := svc.Expiring(ctx, alice, 0) // default window
	if err != nil {
		t.Fatalf("Expiring: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Expiring Soon" {
		t.Fatalf("Expiring returned %d items", len(got))
	}
}

func TestUpdateCannotTouchQuantity(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	it := newItem()
	if err := svc.Add(ctx, alice, it); err != nil {
		t.Fatalf("Add: %v", err)
	}

	min := 8
	got, err := svc.Update(ctx, alice, it.ID, &Patch{MinQuantity: &min})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Quantity != 10 {
		t.Fatalf("Quantity = %d, want untouched 10", got.Quantity)
	}
	if got.MinQuantity != 8 {
		t.Fatalf("MinQuantity = %d, want 8", got.MinQuantity)
	}
}

func TestCrossTenantAdjust(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	it := newItem()
	if err := svc.Add(ctx, alice, it); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Restock(ctx, bob, it.ID, 1); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("Restock as other owner: got %v, want ErrUnauthorized", err)
	}
}
