package category

import "context"

// Repository defines the interface for category persistence.
type Repository interface {
	// CreateIfAbsent inserts the named category unless a row with the same
	// name already exists, and returns the surviving row either way. The
	// boolean reports whether this call created the row.
	CreateIfAbsent(ctx context.Context, name string) (*Category, bool, error)

	// FindByName returns the category with the exact name, or nil when absent.
	FindByName(ctx context.Context, name string) (*Category, error)

	// List returns all categories ordered by name ascending.
	List(ctx context.Context) ([]*Category, error)
}
