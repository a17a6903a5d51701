package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Standard dental inventory categories and units. Rows written before the
// enums were closed may carry other values; those are returned as-is on
// read but rejected on write.
var (
	validCategories = map[string]bool{
		"Consumables":           true,
		"Instruments":           true,
		"Equipment":             true,
		"PPE":                   true,
		"Impression Materials":  true,
		"Orthodontic Supplies":  true,
		"Restorative Materials": true,
		"Anesthetics":           true,
		"Infection Control":     true,
		"Office Supplies":       true,
		"Other":                 true,
	}
	validUnits = map[string]bool{
		"Piece": true, "Box": true, "Pack": true, "Kit": true,
		"Bottle": true, "Tube": true, "Syringe": true, "Cartridge": true,
		"Pair": true, "Set": true, "Roll": true, "Sheet": true,
		"Case": true, "Bag": true, "Other": true,
	}
)

// Item maps to the inventory table. Quantity changes only through restock
// and consume; the generic patch cannot touch it.
type Item struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Category        string    `db:"category" json:"category"`
	SKU             string    `db:"sku" json:"sku"`
	Quantity        int       `db:"quantity" json:"quantity"`
	Unit            string    `db:"unit" json:"unit"`
	MinQuantity     int       `db:"min_quantity" json:"minQuantity"`
	Price           float64   `db:"price" json:"price"`
	Supplier        string    `db:"supplier" json:"supplier"`
	SupplierContact string    `db:"supplier_contact" json:"supplierContact"`
	Location        string    `db:"location" json:"location"`
	ExpiryDate      *string   `db:"expiry_date" json:"expiryDate,omitempty"`
	LastRestock     string    `db:"last_restock" json:"lastRestock"`
	Notes           *string   `db:"notes" json:"notes,omitempty"`
	CreatedBy       string    `db:"created_by" json:"createdBy"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// LowStock reports whether the item has fallen to or below its threshold.
func (i *Item) LowStock() bool {
	return i.Quantity <= i.MinQuantity
}

// Patch carries a partial update; nil fields are left untouched. Quantity
// is deliberately absent: stock moves only through restock and consume.
type Patch struct {
	Name            *string  `json:"name,omitempty"`
	Category        *string  `json:"category,omitempty"`
	SKU             *string  `json:"sku,omitempty"`
	Unit            *string  `json:"unit,omitempty"`
	MinQuantity     *int     `json:"minQuantity,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Supplier        *string  `json:"supplier,omitempty"`
	SupplierContact *string  `json:"supplierContact,omitempty"`
	Location        *string  `json:"location,omitempty"`
	ExpiryDate      *string  `json:"expiryDate,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}
