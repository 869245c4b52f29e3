// Package paging iterates paged list responses without knowing which field holds the items. The
// caller supplies the fetch function; paging does no I/O of its own.
package paging

import (
	"context"
	"moodle/internal/models"

	"golang.org/x/sync/errgroup"
)

// PageFunc fetches the page starting at offset with at most limit items.
type PageFunc[R any] func(ctx context.Context, offset, limit int) (R, error)

// Continuation is implemented by responses that tell the caller where the next page starts.
type Continuation interface {
	NextPageOffset() int
}

// Totaler is implemented by responses that report the number of items across all pages.
type Totaler interface {
	TotalCount() int
}

// Walk fetches pages in order and calls visit for every item in server order. It stops on an empty
// page, when a continuation offset stops advancing, or when a reported total is reached. Responses
// with neither continuation nor total are fetched once.
func Walk[R models.ListResponse[T], T any](ctx context.Context, limit int, fetch PageFunc[R], visit func(T) error) error {
	return walkFrom(ctx, 0, limit, fetch, visit)
}

func walkFrom[R models.ListResponse[T], T any](ctx context.Context, offset, limit int, fetch PageFunc[R], visit func(T) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	page, err := fetch(ctx, offset, limit)
	if err != nil {
		return err
	}
	return resume(ctx, offset, limit, page, fetch, visit)
}

// resume visits page, which was fetched at offset, then keeps fetching from where it points.
func resume[R models.ListResponse[T], T any](ctx context.Context, offset, limit int, page R, fetch PageFunc[R], visit func(T) error) error {
	for {
		items := page.Items()
		for _, item := range items {
			if err := visit(item); err != nil {
				return err
			}
		}

		next, more := nextOffset(page, offset, len(items))
		if !more {
			return nil
		}
		offset = next

		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		page, err = fetch(ctx, offset, limit)
		if err != nil {
			return err
		}
	}
}

func nextOffset(page interface{}, offset, count int) (int, bool) {
	if count == 0 {
		return 0, false
	}
	if c, ok := page.(Continuation); ok {
		next := c.NextPageOffset()
		return next, next > offset
	}
	if t, ok := page.(Totaler); ok {
		next := offset + count
		return next, next < t.TotalCount()
	}
	return 0, false
}

// Collect returns the items of every page in order.
func Collect[R models.ListResponse[T], T any](ctx context.Context, limit int, fetch PageFunc[R]) ([]T, error) {
	items := []T{}
	err := Walk(ctx, limit, fetch, func(item T) error {
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CollectParallel fetches the first page, then, when it reports a total beyond that page, fetches the
// remaining pages concurrently with at most workers requests in flight. Offsets advance by the size
// of the first page, since servers may cap pages below limit. If a later page comes back with a
// different size, collection continues sequentially from the end of that page. Items are returned
// in page order. Responses without a total are walked sequentially from the first page.
func CollectParallel[R models.ListResponse[T], T any](ctx context.Context, limit, workers int, fetch PageFunc[R]) ([]T, error) {
	if limit <= 0 {
		return Collect[R, T](ctx, limit, fetch)
	}

	first, err := fetch(ctx, 0, limit)
	if err != nil {
		return nil, err
	}

	items := []T{}
	collect := func(item T) error {
		items = append(items, item)
		return nil
	}

	stride := len(first.Items())
	_, continues := interface{}(first).(Continuation)
	t, hasTotal := interface{}(first).(Totaler)
	if continues || !hasTotal || stride == 0 || t.TotalCount() <= stride {
		if err := resume(ctx, 0, limit, first, fetch, collect); err != nil {
			return nil, err
		}
		return items, nil
	}

	total := t.TotalCount()
	pages := make([][]T, (total+stride-1)/stride)
	pages[0] = first.Items()

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 1; i < len(pages); i++ {
		i := i
		g.Go(func() error {
			page, err := fetch(gctx, i*stride, limit)
			if err != nil {
				return err
			}
			pages[i] = page.Items()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Pages up to the first one of unexpected size are trusted; later ones may overlap or leave gaps.
	last := len(pages) - 1
	for i, p := range pages {
		if len(p) != stride {
			last = i
			break
		}
	}
	for _, p := range pages[:last+1] {
		items = append(items, p...)
	}

	offset := last*stride + len(pages[last])
	if len(pages[last]) > 0 && offset < total {
		if err := walkFrom(ctx, offset, limit, fetch, collect); err != nil {
			return nil, err
		}
	}
	return items, nil
}
