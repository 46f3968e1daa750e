// Package category defines the named groupings videos are filed under and the
// resolver that maps human-readable names to durable identifiers.
package category

import "time"

// Category is a named grouping, globally unique by name (case-sensitive).
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
