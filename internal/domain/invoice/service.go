package invoice

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

// counterKey is the per-owner sequence backing invoice numbers.
const counterKey = "invoice"

type Service struct {
	invoices Repository
	counter  sequence.Counter
	now      func() time.Time
}

func NewService(invoices Repository, counter sequence.Counter) *Service {
	return &Service{invoices: invoices, counter: counter, now: time.Now}
}

func (s *Service) List(ctx context.Context, caller *auth.User) ([]*Invoice, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.invoices.List(ctx, caller.ID)
}

func (s *Service) ListByPatient(ctx context.Context, caller *auth.User, patientID uuid.UUID) ([]*Invoice, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.invoices.ListByPatient(ctx, caller.ID, patientID)
}

func (s *Service) Get(ctx context.Context, caller *auth.User, id uuid.UUID) (*Invoice, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	return s.invoices.GetByID(ctx, caller.ID, id)
}

func (s *Service) Add(ctx context.Context, caller *auth.User, inv *Invoice) error {
	if err := auth.Require(caller); err != nil {
		return err
	}
	if inv.PatientID == uuid.Nil || inv.PatientName == "" {
		return fmt.Errorf("%w: patientId and patientName are required", apperr.ErrValidation)
	}
	if len(inv.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", apperr.ErrValidation)
	}
	for i, it := range inv.Items {
		if it.Quantity <= 0 || it.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d has invalid quantity or unit price", apperr.ErrValidation, i)
		}
	}
	if inv.Tax < 0 || inv.Discount < 0 {
		return fmt.Errorf("%w: tax and discount must be non-negative", apperr.ErrValidation)
	}
	if inv.PaymentStatus == "" {
		inv.PaymentStatus = "pending"
	}
	if !validPaymentStatuses[inv.PaymentStatus] {
		return fmt.Errorf("%w: unknown payment status %q", apperr.ErrValidation, inv.PaymentStatus)
	}
	if inv.Date == "" {
		inv.Date = s.now().Format("2006-01-02")
	}
	if inv.InvoiceNumber == "" {
		num, err := s.NextNumber(ctx, caller)
		if err != nil {
			return err
		}
		inv.InvoiceNumber = num
	}
	inv.CreatedBy = caller.ID
	inv.recompute()
	return s.invoices.Create(ctx, inv)
}

func (s *Service) Update(ctx context.Context, caller *auth.User, id uuid.UUID, patch *Patch) (*Invoice, error) {
	if err := auth.Require(caller); err != nil {
		return nil, err
	}
	if patch.PaymentStatus != nil && !validPaymentStatuses[*patch.PaymentStatus] {
		return nil, fmt.Errorf("%w: unknown payment status %q", apperr.ErrValidation, *patch.PaymentStatus)
	}

	inv, err := s.invoices.GetByID(ctx, caller.ID, id)
	if err != nil {
		return nil, err
	}

	if patch.Date != nil {
		inv.Date = *patch.Date
	}
	if patch.DueDate != nil {
		inv.DueDate = *patch.DueDate
	}
	if patch.Items != nil {
		if len(*patch.Items) == 0 {
			return nil, fmt.Errorf("%w: at least one item is required", apperr.ErrValidation)
		}
		for i, it := range *patch.Items {
			if it.Quantity <= 0 || it.UnitPrice < 0 {
				return nil, fmt.Errorf("%w: item %d has invalid quantity or unit price", apperr.ErrValidation, i)
			}
		}
		inv.Items = *patch.Items
	}
	if patch.Tax != nil {
		if *patch.Tax < 0 {
			return nil, fmt.Errorf("%w: tax must be non-negative", apperr.ErrValidation)
		}
		inv.Tax = *patch.Tax
	}
	if patch.Discount != nil {
		if *patch.Discount < 0 {
			return nil, fmt.Errorf("%w: discount must be non-negative", apperr.ErrValidation)
		}
		inv.Discount = *patch.Discount
	}
	if patch.PaymentStatus != nil {
		inv.PaymentStatus = *patch.PaymentStatus
	}
	if patch.PaymentMethod != nil {
		inv.PaymentMethod = patch.PaymentMethod
	}
	if patch.PaymentDate != nil {
		inv.PaymentDate = patch.PaymentDate
	}
	if patch.Notes != nil {
		inv.Notes = patch.Notes
	}

	// totals are derived state and never trusted from the caller
	inv.recompute()
	return s.invoices.Save(ctx, caller.ID, inv)
}

func (s *Service) Delete(ctx context.Context, caller *auth.User, id uuid.UUID) error {
	if err := auth.Require(caller); err != nil {
		return err
	}
	return s.invoices.Delete(ctx, caller.ID, id)
}

// Unpaid returns the caller's invoices still awaiting money: pending,
// overdue or partially paid.
func (s *Service) Unpaid(ctx context.Context, caller *auth.User) ([]*Invoice, error) {
	all, err := s.List(ctx, caller)
	if err != nil {
		return nil, err
	}
	var unpaid []*Invoice
	for _, inv := range all {
		switch inv.PaymentStatus {
		case "pending", "overdue", "partial":
			unpaid = append(unpaid, inv)
		}
	}
	return unpaid, nil
}

// NextNumber reserves the next invoice number for the caller. The counter
// increment is atomic in storage, so concurrent calls never collide.
func (s *Service) NextNumber(ctx context.Context, caller *auth.User) (string, error) {
	if err := auth.Require(caller); err != nil {
		return "", err
	}
	n, err := s.counter.Next(ctx, caller.ID, counterKey)
	if err != nil {
		return "", fmt.Errorf("reserving invoice number: %w", err)
	}
	return fmt.Sprintf("INV-%s-%d", s.now().Format("20060102"), n), nil
}

// Search filters the caller's invoices by invoice number or patient name.
func (s *Service) Search(ctx context.Context, caller *auth.User, term string) ([]*Invoice, error) {
	all, err := s.List(ctx, caller)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return all, nil
	}
	lower := strings.ToLower(term)
	var matched []*Invoice
	for _, inv := range all {
		if strings.Contains(strings.ToLower(inv.InvoiceNumber), lower) ||
			strings.Contains(strings.ToLower(inv.PatientName), lower) {
			matched = append(matched, inv)
		}
	}
	return matched, nil
}
