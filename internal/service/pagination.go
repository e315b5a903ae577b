package service

import (
	"context"

	"github.com/tyma/backend/internal/model"
)

const maxPerPage = 100

// clampPageParams constrains pagination input instead of rejecting it:
// page is at least 1, perPage lands inside [1, maxPerPage].
func clampPageParams(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// resolvePage applies the graceful fallback: a page beyond the end of
// a non-empty result set resolves to the last page rather than an
// empty list.
func resolvePage(page, perPage, total int) int {
	if total > 0 && (page-1)*perPage >= total {
		return (total-1)/perPage + 1
	}
	return page
}

func totalPages(total, perPage int) int {
	if total == 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// paginate runs the shared count-then-fetch listing flow: clamp the
// requested page parameters, count the filtered set, resolve the
// effective page, fetch that slice and assemble the uniform page
// shape. Items is always non-nil.
func paginate[T any](
	ctx context.Context,
	page, perPage int,
	count func(context.Context) (int, error),
	fetch func(ctx context.Context, limit, offset int) ([]T, error),
) (*model.Page[T], error) {
	page, perPage = clampPageParams(page, perPage)

	total, err := count(ctx)
	if err != nil {
		return nil, err
	}

	page = resolvePage(page, perPage, total)

	items, err := fetch(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	return &model.Page[T]{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages(total, perPage),
	}, nil
}
