package sequence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type counterPG struct{ pool *pgxpool.Pool }

func NewCounterPG(pool *pgxpool.Pool) Counter {
	return &counterPG{pool: pool}
}

func (c *counterPG) Next(ctx context.Context, ownerID, key string) (int64, error) {
	var value int64
	err := c.pool.QueryRow(ctx, `
		INSERT INTO counters (owner_id, key, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (owner_id, key)
		DO UPDATE SET value = counters.value + 1
		RETURNING value`,
		ownerID, key).Scan(&value)
	if err != nil {
		return 0, err
	}
	return value, nil
}
