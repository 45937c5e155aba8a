package catalog

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"alpha-listings/internal/model"
)

type Service struct {
	sources []Source
}

func NewService(sources []Source) *Service {
	return &Service{sources: sources}
}

// Load reads every source concurrently and merges them in source order.
// A failing source is logged and contributes nothing. Items with an unknown
// category or an ID already seen are dropped.
func (s *Service) Load(ctx context.Context) (*Catalog, error) {
	log.Printf("catalog load started")

	results := make([][]model.Item, len(s.sources))
	group, gctx := errgroup.WithContext(ctx)

	for i, source := range s.sources {
		i, src := i, source
		group.Go(func() error {
			log.Printf("[%s] loading...", src.Source())
			items, err := src.Load(gctx)
			if err != nil {
				log.Printf("[%s] load failed: %v", src.Source(), err)
				return nil
			}
			log.Printf("[%s] found %d projects", src.Source(), len(items))
			results[i] = items
			return nil
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("catalog group error: %v", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := map[int]bool{}
	var merged []model.Item

	for i, items := range results {
		st := loadStats{fetched: len(items)}
		for _, item := range items {
			category, ok := model.ParseCategory(string(item.Category))
			if !ok {
				st.invalid++
				log.Printf("[%s] skipping project %d: unknown category %q", s.sources[i].Source(), item.ID, item.Category)
				continue
			}
			if seen[item.ID] {
				st.duplicates++
				continue
			}
			seen[item.ID] = true
			item.Category = category
			merged = append(merged, item)
			st.kept++
		}
		log.Printf("[%s] summary: fetched=%d kept=%d duplicates=%d invalid=%d",
			s.sources[i].Source(), st.fetched, st.kept, st.duplicates, st.invalid,
		)
	}

	log.Printf("catalog ready with %d projects", len(merged))
	return New(merged), nil
}

type loadStats struct {
	fetched    int
	kept       int
	duplicates int
	invalid    int
}
