package requests

// CreateCategoryRequest represents an explicit category creation.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}
