// package catalog reads the set of tracked video identifiers from the store.
package catalog

import (
	"context"
	"errors"
	"fmt"
)

// ErrStoreUnavailable tags any failure to read the catalog, so the endpoint
// can report a 5xx instead of an empty list that would be indistinguishable
// from "no videos configured".
var ErrStoreUnavailable = errors.New("catalog store unavailable")

// Store is the read-only slice of the database layer the reader needs.
type Store interface {
	ListCatalogVideoIDs(ctx context.Context) ([]string, error)
}

type Reader struct {
	store Store
}

func NewReader(store Store) *Reader {
	return &Reader{store: store}
}

// ListTrackedIDs returns the catalog's video identifiers. An empty catalog
// is a valid, empty result, not an error.
func (r *Reader) ListTrackedIDs(ctx context.Context) ([]string, error) {
	if r.store == nil {
		return nil, fmt.Errorf("%w: no store connection", ErrStoreUnavailable)
	}

	ids, err := r.store.ListCatalogVideoIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return ids, nil
}
