// package feed composes catalog lookup and metadata enrichment into the one
// aggregate the client consumes.
package feed

import (
	"context"

	"oakstream.dev/tubefeed/internal/youtube"
)

type Catalog interface {
	ListTrackedIDs(ctx context.Context) ([]string, error)
}

type Enricher interface {
	Enrich(ctx context.Context, ids []string) ([]youtube.Video, error)
}

type Service struct {
	catalog  Catalog
	enricher Enricher
}

func NewService(catalog Catalog, enricher Enricher) *Service {
	return &Service{catalog: catalog, enricher: enricher}
}

// Videos returns the enriched records for every tracked identifier. An empty
// catalog yields an empty, successful result without touching the metadata
// API. Failures keep their catalog/upstream tag and are never retried here;
// retry is the user's explicit pull-to-refresh.
func (s *Service) Videos(ctx context.Context) ([]youtube.Video, error) {
	ids, err := s.catalog.ListTrackedIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []youtube.Video{}, nil
	}

	return s.enricher.Enrich(ctx, ids)
}
