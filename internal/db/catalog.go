package db

import (
	"context"
	"fmt"
)

// ListCatalogVideoIDs returns every tracked video identifier, in whatever
// order the store hands them back. The catalog is append-managed outside
// this service; we only ever read it.
func (db *DatabaseConnection) ListCatalogVideoIDs(ctx context.Context) ([]string, error) {
	rows, err := db.Query(ctx, `SELECT video_id FROM catalog_entries`)
	if err != nil {
		return nil, fmt.Errorf("query catalog_entries: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan catalog_entries row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog_entries rows: %w", err)
	}

	return ids, nil
}
