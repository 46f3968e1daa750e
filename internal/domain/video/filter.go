package video

import (
	"context"

	"video-catalog-api/internal/utils/platformerrors"
)

// DefaultPageSize is the page window used when the caller omits a limit,
// sized for the gallery grid.
const DefaultPageSize = 12

// Filter contains criteria for the paginated video listing.
type Filter struct {
	// Category filters by exact category name via the join; nil lists all.
	Category *string

	Page  int
	Limit int
}

// NewFilter creates a filter with default pagination.
func NewFilter() *Filter {
	return &Filter{
		Page:  1,
		Limit: DefaultPageSize,
	}
}

// WithCategory sets the category name filter.
func (f *Filter) WithCategory(name string) *Filter {
	f.Category = &name
	return f
}

// WithPage sets the page number.
func (f *Filter) WithPage(page int) *Filter {
	f.Page = page
	return f
}

// WithLimit sets the page size.
func (f *Filter) WithLimit(limit int) *Filter {
	f.Limit = limit
	return f
}

// Offset computes the row offset of the page window.
func (f *Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Validate rejects non-positive page numbers and page sizes.
func (f *Filter) Validate(ctx context.Context) error {
	if f.Page < 1 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"page must be a positive integer",
			nil,
			"video-list-page-001",
		)
	}
	if f.Limit < 1 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"limit must be a positive integer",
			nil,
			"video-list-limit-001",
		)
	}
	return nil
}
