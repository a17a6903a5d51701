package invoice

import (
	"math"
	"time"

	"github.com/google/uuid"
)

var validPaymentStatuses = map[string]bool{
	"pending":   true,
	"partial":   true,
	"paid":      true,
	"overdue":   true,
	"cancelled": true,
}

// Item is one invoice line. Amount is always derived from quantity and
// unit price; values supplied by the caller are discarded.
type Item struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// Invoice maps to the invoices table; Items is stored as a jsonb column.
// Tax is a percentage of the subtotal, Discount a flat amount.
type Invoice struct {
	ID            uuid.UUID `db:"id" json:"id"`
	InvoiceNumber string    `db:"invoice_number" json:"invoiceNumber"`
	PatientID     uuid.UUID `db:"patient_id" json:"patientId"`
	PatientName   string    `db:"patient_name" json:"patientName"`
	Date          string    `db:"date" json:"date"`
	DueDate       string    `db:"due_date" json:"dueDate"`
	Items         []Item    `db:"items" json:"items"`
	Subtotal      float64   `db:"subtotal" json:"subtotal"`
	Tax           float64   `db:"tax" json:"tax"`
	Discount      float64   `db:"discount" json:"discount"`
	Total         float64   `db:"total" json:"total"`
	PaymentStatus string    `db:"payment_status" json:"paymentStatus"`
	PaymentMethod *string   `db:"payment_method" json:"paymentMethod,omitempty"`
	PaymentDate   *string   `db:"payment_date" json:"paymentDate,omitempty"`
	Notes         *string   `db:"notes" json:"notes,omitempty"`
	CreatedBy     string    `db:"created_by" json:"createdBy"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// Patch carries a partial update; nil fields are left untouched. Subtotal
// and total are absent on purpose: they are recomputed after every merge.
type Patch struct {
	Date          *string  `json:"date,omitempty"`
	DueDate       *string  `json:"dueDate,omitempty"`
	Items         *[]Item  `json:"items,omitempty"`
	Tax           *float64 `json:"tax,omitempty"`
	Discount      *float64 `json:"discount,omitempty"`
	PaymentStatus *string  `json:"paymentStatus,omitempty"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	PaymentDate   *string  `json:"paymentDate,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// recompute derives item amounts, the subtotal and the total from the
// current items, tax percentage and discount.
func (inv *Invoice) recompute() {
	var subtotal float64
	for i := range inv.Items {
		inv.Items[i].Amount = round2(inv.Items[i].Quantity * inv.Items[i].UnitPrice)
		subtotal += inv.Items[i].Amount
	}
	inv.Subtotal = round2(subtotal)
	inv.Total = round2(inv.Subtotal + inv.Subtotal*inv.Tax/100 - inv.Discount)
}
