package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dentflow/dentflow/internal/platform/apperr"
)

type inventoryRepoPG struct{ pool *pgxpool.Pool }

func NewInventoryRepoPG(pool *pgxpool.Pool) Repository {
	return &inventoryRepoPG{pool: pool}
}

const itemCols = `id, name, category, sku, quantity, unit, min_quantity,
	price, supplier, supplier_contact, location, expiry_date, last_restock,
	notes, created_by, created_at, updated_at`

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.Name, &it.Category, &it.SKU, &it.Quantity,
		&it.Unit, &it.MinQuantity, &it.Price, &it.Supplier,
		&it.SupplierContact, &it.Location, &it.ExpiryDate, &it.LastRestock,
		&it.Notes, &it.CreatedBy, &it.CreatedAt, &it.UpdatedAt)
	return &it, err
}

func (r *inventoryRepoPG) classifyMiss(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM inventory WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return apperr.ErrUnauthorized
	}
	return apperr.ErrNotFound
}

func (r *inventoryRepoPG) List(ctx context.Context, ownerID string) ([]*Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemCols+` FROM inventory WHERE created_by = $1 ORDER BY name`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *inventoryRepoPG) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*Item, error) {
	it, err := scanItem(r.pool.QueryRow(ctx,
		`SELECT `+itemCols+` FROM inventory WHERE id = $1 AND created_by = $2`,
		id, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *inventoryRepoPG) Create(ctx context.Context, it *Item) error {
	it.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO inventory (id, name, category, sku, quantity, unit,
			min_quantity, price, supplier, supplier_contact, location,
			expiry_date, last_restock, notes, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING created_at, updated_at`,
		it.ID, it.Name, it.Category, it.SKU, it.Quantity, it.Unit,
		it.MinQuantity, it.Price, it.Supplier, it.SupplierContact,
		it.Location, it.ExpiryDate, it.LastRestock, it.Notes,
		it.CreatedBy).Scan(&it.CreatedAt, &it.UpdatedAt)
}

func (r *inventoryRepoPG) Update(ctx context.Context, ownerID string, id uuid.UUID, patch *Patch) (*Item, error) {
	set := "updated_at = NOW()"
	var args []interface{}
	idx := 1

	add := func(col string, v interface{}) {
		set += fmt.Sprintf(", %s = $%d", col, idx)
		args = append(args, v)
		idx++
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.SKU != nil {
		add("sku", *patch.SKU)
	}
	if patch.Unit != nil {
		add("unit", *patch.Unit)
	}
	if patch.MinQuantity != nil {
		add("min_quantity", *patch.MinQuantity)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Supplier != nil {
		add("supplier", *patch.Supplier)
	}
	if patch.SupplierContact != nil {
		add("supplier_contact", *patch.SupplierContact)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.ExpiryDate != nil {
		add("expiry_date", *patch.ExpiryDate)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}

	query := fmt.Sprintf(`UPDATE inventory SET %s WHERE id = $%d AND created_by = $%d RETURNING `+itemCols,
		set, idx, idx+1)
	args = append(args, id, ownerID)

	it, err := scanItem(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *inventoryRepoPG) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM inventory WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, id)
	}
	return nil
}

func (r *inventoryRepoPG) AdjustQuantity(ctx context.Context, ownerID string, id uuid.UUID, delta int, restockDate string) (*Item, error) {
	set := "quantity = quantity + $1, updated_at = NOW()"
	args := []interface{}{delta, id, ownerID}
	if restockDate != "" {
		set += ", last_restock = $4"
		args = append(args, restockDate)
	}

	it, err := scanItem(r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE inventory SET %s
		WHERE id = $2 AND created_by = $3 AND quantity + $1 >= 0
		RETURNING `+itemCols, set), args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyAdjustMiss(ctx, ownerID, id)
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

// classifyAdjustMiss separates the three reasons a quantity adjustment can
// match no rows: the row is owned (guard refused the delta), the row belongs
// to someone else, or it does not exist.
func (r *inventoryRepoPG) classifyAdjustMiss(ctx context.Context, ownerID string, id uuid.UUID) error {
	var owned bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM inventory WHERE id = $1 AND created_by = $2)`,
		id, ownerID).Scan(&owned); err != nil {
		return err
	}
	if owned {
		return fmt.Errorf("%w: insufficient stock", apperr.ErrValidation)
	}
	return r.classifyMiss(ctx, id)
}
