package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dentflow/dentflow/internal/platform/apperr"
	"github.com/dentflow/dentflow/internal/platform/auth"
	"github.com/dentflow/dentflow/internal/platform/sequence"
)

// DefaultExpiryWindowDays bounds the expiring-soon view when no window is
// given.
const DefaultExpiryWindowDays = 30

type Service struct {
	items   Repository
	counter sequence.Counter
	now     func() time.Time
}

func NewService(items Repository, counter sequence.Counter) *Service {
	return &Service{items: items, counter: counter, now: time.Now}
}

func (s *Service) List(ctx context.Context, caller *auth.User) ([]*Item, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.items.List(ctx, caller.ID)
}

func (s *Service) Get(ctx context.Context, caller *auth.User, id uuid.UUID) (*Item, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.items.GetByID(ctx, caller.ID, id)
}

func (s *Service) Add(ctx context.Context, caller *auth.User, it *Item) error {
	if err := auth.Require(caller); err != nil {
		return err
	}
	if it.Name == "" {
		return fmt.Errorf("%w: name is required", apperr.ErrValidation)
	}
	if !validCategories[it.Category] {
		return fmt.Errorf("%w: unknown category %q", apperr.ErrValidation, it.Category)
	}
	if it.Unit != "" && !validUnits[it.Unit] {
		return fmt.Errorf("%w: unknown unit %q", apperr.ErrValidation, it.Unit)
	}
	if it.Quantity < 0 || it.MinQuantity < 0 || it.Price < 0 {
		return fmt.Errorf("%w: quantity, minQuantity and price must be non-negative", apperr.ErrValidation)
	}
	if it.SKU == "" {
		sku, err := s.NextSKU(ctx, caller, it.Category)
		if err != nil {
			return err
		}
		it.SKU = sku
	}
	if it.LastRestock == "" {
		it.LastRestock = s.now().Format("2006-01-02")
	}
	it.CreatedBy = caller.ID
	return s.items.Create(ctx, it)
}

func (s *Service) Update(ctx context.Context, caller *auth.User, id uuid.UUID, patch *Patch) (*Item, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperr.ErrValidation)
	}
	if patch.Category != nil && !validCategories[*patch.Category] {
		return nil, fmt.Errorf("%w: unknown category %q", apperr.ErrValidation, *patch.Category)
	}
	if patch.Unit != nil && !validUnits[*patch.Unit] {
		return nil, fmt.Errorf("%w: unknown unit %q", apperr.ErrValidation, *patch.Unit)
	}
	if patch.MinQuantity != nil && *patch.MinQuantity < 0 {
		return nil, fmt.Errorf("%w: minQuantity must be non-negative", apperr.ErrValidation)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", apperr.ErrValidation)
	}
	return s.items.Update(ctx, caller.ID, id, patch)
}

func (s *Service) Delete(ctx context.Context, caller *auth.User, id uuid.UUID) error {
	if err := auth.Require(caller); err != nil {
		return err
	}
	return s.items.Delete(ctx, caller.ID, id)
}

// Restock raises the stock level and records the restock date.
func (s *Service) Restock(ctx context.Context, caller *auth.User, id uuid.UUID, qty int) (*Item, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	if qty <= 0 {
		return nil, fmt.Errorf("%w: restock quantity must be positive", apperr.ErrValidation)
	}
	return s.items.AdjustQuantity(ctx, caller.ID, id, qty, s.now().Format("2006-01-02"))
}

// Consume lowers the stock level. Draining below zero fails in storage and
// surfaces as a validation error.
func (s *Service) Consume(ctx context.Context, caller *auth.User, id uuid.UUID, qty int) (*Item, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	if qty <= 0 {
		return nil, fmt.Errorf("%w: consume quantity must be positive", apperr.ErrValidation)
	}
	return s.items.AdjustQuantity(ctx, caller.ID, id, -qty, "")
}

// LowStock returns the caller's items at or below their reorder threshold.
func (s *Service) LowStock(ctx context.Context, caller *auth.User) ([]*Item, error) {
	all, err := s.List(ctx, caller)
	if err != nil {
		return nil, err
	}
	var low []*Item
	for _, it := range all {
		if it.LowStock() {
			low = append(low, it)
		}
	}
	return low, nil
}

// Expiring returns items whose expiry date falls within the window.
func (s *Service) Expiring(ctx context.Context, caller *auth.User, days int) ([]*Item, error) {
	if days <= 0 {
		days = DefaultExpiryWindowDays
	}
	all, err := s.List(ctx, caller)
	if err != nil {
		return nil, err
	}
	today := s.now().Format("2006-01-02")
	cutoff := s.now().AddDate(0, 0, days).Format("2006-01-02")
	var expiring []*Item
	for _, it := range all {
		if it.ExpiryDate == nil || *it.ExpiryDate == "" {
			continue
		}
		if *it.ExpiryDate >= today && *it.ExpiryDate <= cutoff {
			expiring = append(expiring, it)
		}
	}
	return expiring, nil
}

// NextSKU reserves the next SKU for a category: a three-letter uppercase
// prefix plus a zero-padded per-category sequence.
func (s *Service) NextSKU(ctx context.Context, caller *auth.User, category string) (string, error) {
	if err := auth.Require(caller); err != nil {
		return "", err
	}
	if !validCategories[category] {
		return "", fmt.Errorf("%w: unknown category %q", apperr.ErrValidation, category)
	}
	prefix := strings.ToUpper(category)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	n, err := s.counter.Next(ctx, caller.ID, "sku:"+prefix)
	if err != nil {
		return "", fmt.Errorf("reserving sku: %w", err)
	}
	return fmt.Sprintf("%s-%04d", prefix, n), nil
}
