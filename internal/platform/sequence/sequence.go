// Package sequence provides per-owner atomic counters for human-readable
// identifiers (invoice numbers, SKUs). The increment happens inside a single
// statement so two concurrent callers can never observe the same value.
package sequence

import "context"

// Counter hands out strictly increasing values per (owner, key) pair.
type Counter interface {
	Next(ctx context.Context, ownerID, key string) (int64, error)
}
