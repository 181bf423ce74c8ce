package repositories

import (
	"context"
	"net/url"
)

// Record is one row in the remote record store: an opaque server-assigned ID
// plus a free-form field map.
type Record struct {
	ID     string
	Fields map[string]any
}

// RateStore is the generic table API of the remote record store. The store
// imposes a small per-request record limit, so implementations chunk writes and
// deletes client-side.
type RateStore interface {
	// ListAll fetches every record in the table, following the store's
	// continuation cursor across pages. params may carry store-specific
	// sort/filter options.
	ListAll(ctx context.Context, table string, params url.Values) ([]Record, error)

	// BulkInsert creates the given records (field maps) in chunks and returns
	// the created records with their server-assigned IDs.
	BulkInsert(ctx context.Context, table string, fields []map[string]any) ([]Record, error)

	// ReplaceAll deletes every existing record in the table and bulk-inserts
	// the new set. Not transactional: a crash between delete and insert leaves
	// the table empty, and concurrent calls for the same table corrupt it.
	// An empty new set is rejected rather than blanking the table.
	ReplaceAll(ctx context.Context, table string, fields []map[string]any) ([]Record, error)
}
