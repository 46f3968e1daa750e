package responses

import "video-catalog-api/internal/domain/category"

// CategoryResponse is the externally visible category shape.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MapCategoryToResponse projects a domain category.
func MapCategoryToResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

// MapCategoriesToResponse projects a category list, preserving order.
func MapCategoriesToResponse(categories []*category.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, MapCategoryToResponse(c))
	}
	return out
}
