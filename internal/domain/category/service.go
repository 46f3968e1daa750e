package category

import (
	"context"
	"strings"
	"unicode/utf8"

	"video-catalog-api/internal/utils/platformerrors"
)

// maxNameLen matches the VARCHAR width of the name column, counted in
// characters.
const maxNameLen = 255

// Service defines the interface for category business logic.
type Service interface {
	// Resolve maps a category name to its durable row, creating the category
	// on first use. An empty (or all-whitespace) name resolves to nil without
	// touching the store.
	Resolve(ctx context.Context, name string) (*Category, error)

	// Create explicitly creates a category. A duplicate name is a conflict.
	Create(ctx context.Context, name string) (*Category, error)

	// List returns all categories, name ascending.
	List(ctx context.Context) ([]*Category, error)
}

// DefaultService implements the Service interface.
type DefaultService struct {
	repo Repository
}

// NewService creates a new category service.
func NewService(repo Repository) Service {
	return &DefaultService{repo: repo}
}

// Resolve returns the category for the given name, inserting it when unseen.
// The insert-then-reread contract of the repository makes resolution safe
// under concurrent first use of the same name.
func (s *DefaultService) Resolve(ctx context.Context, name string) (*Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, nil
	}

	cat, _, err := s.repo.CreateIfAbsent(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// Create creates a category from an explicit request.
func (s *DefaultService) Create(ctx context.Context, name string) (*Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"category name must not be empty",
			nil,
			"category-create-name-001",
		)
	}
	if utf8.RuneCountInString(trimmed) > maxNameLen {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"category name must be at most 255 characters",
			nil,
			"category-create-name-002",
		)
	}

	cat, created, err := s.repo.CreateIfAbsent(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeConflict,
			"category already exists",
			nil,
			"category-create-duplicate-001",
		)
	}
	return cat, nil
}

// List returns all categories.
func (s *DefaultService) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}
