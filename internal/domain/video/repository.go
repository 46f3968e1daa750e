package video

import "context"

// Repository defines the interface for video persistence.
type Repository interface {
	// Create inserts a new row and fills the store-assigned identifier and
	// timestamps on the passed video.
	Create(ctx context.Context, v *Video) error

	// FindByID returns the join-enriched video, or a not-found error.
	FindByID(ctx context.Context, id int64) (*Video, error)

	// List returns one page of join-enriched videos plus the total row count
	// under the same filter. The count and page reads are independent and not
	// snapshot-consistent with each other; that relaxation is deliberate.
	List(ctx context.Context, filter *Filter) ([]*Video, int64, error)

	// Update applies only the fields present in params. categoryID carries
	// the resolved identifier when params.Category is set. Zero affected
	// rows surface as a not-found error.
	Update(ctx context.Context, id int64, params UpdateParams, categoryID *int64) error

	// Delete removes the row physically. Zero affected rows surface as a
	// not-found error.
	Delete(ctx context.Context, id int64) error
}
