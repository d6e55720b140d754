package service

import (
	"context"

	"github.com/portfolio-content-api/internal/content"
	"golang.org/x/sync/errgroup"
)

// loadCollection loads every slug of kind concurrently and returns the
// documents that loaded, in slug order. fix is called on each decoded item
// with its file slug. The only error is context cancellation.
func loadCollection[T any](ctx context.Context, loader *content.Loader, kind string, slugs []string, limit int, fix func(item *T, slug string)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := make([]*T, len(slugs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, slug := range slugs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var item T
			if loader.LoadInto(gctx, content.Join(kind, slug), &item) {
				if fix != nil {
					fix(&item, slug)
				}
				results[i] = &item
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]T, 0, len(slugs))
	for _, item := range results {
		if item != nil {
			items = append(items, *item)
		}
	}
	return items, nil
}
