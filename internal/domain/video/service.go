package video

import (
	"context"

	"github.com/rs/zerolog"

	"video-catalog-api/internal/domain/category"
	"video-catalog-api/internal/webhook"
)

// CategoryResolver maps a category name to its durable row, creating it on
// first use. Satisfied by category.Service.
type CategoryResolver interface {
	Resolve(ctx context.Context, name string) (*category.Category, error)
}

// Service defines the interface for catalog business logic.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Video, error)
	Get(ctx context.Context, id int64) (*Video, error)
	List(ctx context.Context, filter *Filter) ([]*Video, int64, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*Video, error)
	Delete(ctx context.Context, id int64) error
}

// DefaultService implements the Service interface.
type DefaultService struct {
	repo     Repository
	resolver CategoryResolver
	notifier webhook.Notifier
	log      zerolog.Logger
}

// NewService creates a new video service. notifier may be nil when webhook
// delivery is not configured.
func NewService(repo Repository, resolver CategoryResolver, notifier webhook.Notifier, log zerolog.Logger) Service {
	return &DefaultService{
		repo:     repo,
		resolver: resolver,
		notifier: notifier,
		log:      log.With().Str("service", "video").Logger(),
	}
}

// Create validates the payload, resolves the category name if present, and
// stores the new entry. The returned video is re-read through the join so the
// caller sees the same projection a listing would.
func (s *DefaultService) Create(ctx context.Context, params CreateParams) (*Video, error) {
	if err := params.Validate(ctx); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, params.Category)
	if err != nil {
		return nil, err
	}

	status := StatusActive
	if params.Status != nil {
		status = *params.Status
	}

	v := &Video{
		Title:       params.Title,
		Description: params.Description,
		Src:         params.Src,
		Type:        params.Type,
		Poster:      params.Poster,
		Duration:    params.Duration,
		Resolution:  params.Resolution,
		Size:        params.Size,
		Status:      status,
		CategoryID:  categoryID,
		UploadedBy:  params.UploadedBy,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	s.notify(webhook.EventVideoCreated, created)
	return created, nil
}

// Get returns one join-enriched catalog entry.
func (s *DefaultService) Get(ctx context.Context, id int64) (*Video, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a filtered page of videos plus the total count.
func (s *DefaultService) List(ctx context.Context, filter *Filter) ([]*Video, int64, error) {
	if filter == nil {
		filter = NewFilter()
	}
	if err := filter.Validate(ctx); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, filter)
}

// Update applies a partial update: only the fields present in params change.
func (s *DefaultService) Update(ctx context.Context, id int64, params UpdateParams) (*Video, error) {
	if err := params.Validate(ctx); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, params.Category)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, params, categoryID); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notify(webhook.EventVideoUpdated, updated)
	return updated, nil
}

// Delete physically removes a catalog entry.
func (s *DefaultService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(webhook.EventVideoDeleted, existing)
	return nil
}

func (s *DefaultService) resolveCategory(ctx context.Context, name *string) (*int64, error) {
	if name == nil {
		return nil, nil
	}
	cat, err := s.resolver.Resolve(ctx, *name)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	return &cat.ID, nil
}

func (s *DefaultService) notify(event webhook.Event, v *Video) {
	if s.notifier == nil || v == nil {
		return
	}
	s.notifier.NotifyVideoEvent(event, v.ID, v.Title)
}
