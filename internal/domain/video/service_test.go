package video_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"video-catalog-api/internal/domain/category"
	"video-catalog-api/internal/domain/video"
	"video-catalog-api/internal/utils/platformerrors"
	"video-catalog-api/internal/webhook"
)

type mockRepository struct {
	createFn   func(ctx context.Context, v *video.Video) error
	findByIDFn func(ctx context.Context, id int64) (*video.Video, error)
	listFn     func(ctx context.Context, filter *video.Filter) ([]*video.Video, int64, error)
	updateFn   func(ctx context.Context, id int64, params video.UpdateParams, categoryID *int64) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockRepository) Create(ctx context.Context, v *video.Video) error {
	return m.createFn(ctx, v)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*video.Video, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockRepository) List(ctx context.Context, filter *video.Filter) ([]*video.Video, int64, error) {
	return m.listFn(ctx, filter)
}

func (m *mockRepository) Update(ctx context.Context, id int64, params video.UpdateParams, categoryID *int64) error {
	return m.updateFn(ctx, id, params, categoryID)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockResolver struct {
	resolveFn func(ctx context.Context, name string) (*category.Category, error)
	calls     int
}

func (m *mockResolver) Resolve(ctx context.Context, name string) (*category.Category, error) {
	m.calls++
	if m.resolveFn != nil {
		return m.resolveFn(ctx, name)
	}
	return nil, nil
}

type recordingNotifier struct {
	events []webhook.Event
}

func (r *recordingNotifier) NotifyVideoEvent(event webhook.Event, videoID int64, title string) {
	r.events = append(r.events, event)
}

func notFoundErr() error {
	return platformerrors.NewError(
		context.Background(),
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		"video not found",
		nil,
		"video-find-missing-001",
	)
}

func TestService_Create_ResolvesCategoryAndDefaultsStatus(t *testing.T) {
	var stored *video.Video
	repo := &mockRepository{
		createFn: func(ctx context.Context, v *video.Video) error {
			v.ID = 42
			stored = v
			return nil
		},
		findByIDFn: func(ctx context.Context, id int64) (*video.Video, error) {
			enriched := *stored
			enriched.CategoryName = strPtr("music")
			return &enriched, nil
		},
	}
	resolver := &mockResolver{
		resolveFn: func(ctx context.Context, name string) (*category.Category, error) {
			return &category.Category{ID: 7, Name: name}, nil
		},
	}
	notifier := &recordingNotifier{}
	svc := video.NewService(repo, resolver, notifier, zerolog.Nop())

	params := validCreateParams()
	params.Category = strPtr("music")

	created, err := svc.Create(context.Background(), params)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 42 {
		t.Errorf("expected id 42, got %d", created.ID)
	}
	if created.Status != video.StatusActive {
		t.Errorf("expected default status active, got %q", created.Status)
	}
	if stored.CategoryID == nil || *stored.CategoryID != 7 {
		t.Errorf("expected resolved category id 7, got %v", stored.CategoryID)
	}
	if created.CategoryName == nil || *created.CategoryName != "music" {
		t.Errorf("expected join-enriched category name, got %v", created.CategoryName)
	}
	if resolver.calls != 1 {
		t.Errorf("expected one resolver call, got %d", resolver.calls)
	}
	if len(notifier.events) != 1 || notifier.events[0] != webhook.EventVideoCreated {
		t.Errorf("expected one created event, got %v", notifier.events)
	}
}

func TestService_Create_InvalidPayloadNeverReachesStore(t *testing.T) {
	repo := &mockRepository{
		createFn: func(ctx context.Context, v *video.Video) error {
			t.Fatal("store must not be reached for an invalid payload")
			return nil
		},
	}
	resolver := &mockResolver{}
	svc := video.NewService(repo, resolver, nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), video.CreateParams{Title: "no src or type"})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if resolver.calls != 0 {
		t.Errorf("resolver must not run before validation, got %d calls", resolver.calls)
	}
}

func TestService_Create_WithoutCategorySkipsResolver(t *testing.T) {
	repo := &mockRepository{
		createFn: func(ctx context.Context, v *video.Video) error {
			v.ID = 1
			return nil
		},
		findByIDFn: func(ctx context.Context, id int64) (*video.Video, error) {
			return &video.Video{ID: id, Status: video.StatusActive}, nil
		},
	}
	resolver := &mockResolver{}
	svc := video.NewService(repo, resolver, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validCreateParams()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if resolver.calls != 0 {
		t.Errorf("expected no resolver call without a category, got %d", resolver.calls)
	}
}

func TestService_Update_NoFields(t *testing.T) {
	repo := &mockRepository{
		updateFn: func(ctx context.Context, id int64, params video.UpdateParams, categoryID *int64) error {
			t.Fatal("store must not be reached for an empty update")
			return nil
		},
	}
	svc := video.NewService(repo, &mockResolver{}, nil, zerolog.Nop())

	_, err := svc.Update(context.Background(), 1, video.UpdateParams{})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("expected validation error for empty update, got %v", err)
	}
}

func TestService_Update_StatusOnly(t *testing.T) {
	var gotParams video.UpdateParams
	var gotCategoryID *int64
	repo := &mockRepository{
		updateFn: func(ctx context.Context, id int64, params video.UpdateParams, categoryID *int64) error {
			gotParams = params
			gotCategoryID = categoryID
			return nil
		},
		findByIDFn: func(ctx context.Context, id int64) (*video.Video, error) {
			return &video.Video{ID: id, Status: video.StatusArchived}, nil
		},
	}
	resolver := &mockResolver{}
	notifier := &recordingNotifier{}
	svc := video.NewService(repo, resolver, notifier, zerolog.Nop())

	updated, err := svc.Update(context.Background(), 5, video.UpdateParams{Status: statusPtr(video.StatusArchived)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != video.StatusArchived {
		t.Errorf("expected archived, got %q", updated.Status)
	}
	if gotParams.Status == nil || *gotParams.Status != video.StatusArchived {
		t.Error("expected status to be forwarded to the store")
	}
	if gotParams.Title != nil || gotParams.Src != nil || gotCategoryID != nil {
		t.Error("absent fields must not be forwarded")
	}
	if resolver.calls != 0 {
		t.Errorf("expected no resolver call without a category, got %d", resolver.calls)
	}
	if len(notifier.events) != 1 || notifier.events[0] != webhook.EventVideoUpdated {
		t.Errorf("expected one updated event, got %v", notifier.events)
	}
}

func TestService_Update_Missing(t *testing.T) {
	repo := &mockRepository{
		updateFn: func(ctx context.Context, id int64, params video.UpdateParams, categoryID *int64) error {
			return notFoundErr()
		},
	}
	svc := video.NewService(repo, &mockResolver{}, nil, zerolog.Nop())

	_, err := svc.Update(context.Background(), 999, video.UpdateParams{Title: strPtr("x")})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	deleted := false
	repo := &mockRepository{
		findByIDFn: func(ctx context.Context, id int64) (*video.Video, error) {
			return &video.Video{ID: id, Title: "doomed"}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	notifier := &recordingNotifier{}
	svc := video.NewService(repo, &mockResolver{}, notifier, zerolog.Nop())

	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Error("expected delete to reach the store")
	}
	if len(notifier.events) != 1 || notifier.events[0] != webhook.EventVideoDeleted {
		t.Errorf("expected one deleted event, got %v", notifier.events)
	}
}

func TestService_Delete_Missing(t *testing.T) {
	repo := &mockRepository{
		findByIDFn: func(ctx context.Context, id int64) (*video.Video, error) {
			return nil, notFoundErr()
		},
		deleteFn: func(ctx context.Context, id int64) error {
			t.Fatal("delete must not run when lookup fails")
			return nil
		},
	}
	notifier := &recordingNotifier{}
	svc := video.NewService(repo, &mockResolver{}, notifier, zerolog.Nop())

	err := svc.Delete(context.Background(), 404)
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if len(notifier.events) != 0 {
		t.Errorf("no event expected for a failed delete, got %v", notifier.events)
	}
}

func TestService_List_InvalidPage(t *testing.T) {
	repo := &mockRepository{
		listFn: func(ctx context.Context, filter *video.Filter) ([]*video.Video, int64, error) {
			t.Fatal("store must not be reached for an invalid filter")
			return nil, 0, nil
		},
	}
	svc := video.NewService(repo, &mockResolver{}, nil, zerolog.Nop())

	_, _, err := svc.List(context.Background(), video.NewFilter().WithPage(0))
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestService_List_NilFilterDefaults(t *testing.T) {
	var gotFilter *video.Filter
	repo := &mockRepository{
		listFn: func(ctx context.Context, filter *video.Filter) ([]*video.Video, int64, error) {
			gotFilter = filter
			return []*video.Video{}, 0, nil
		},
	}
	svc := video.NewService(repo, &mockResolver{}, nil, zerolog.Nop())

	if _, _, err := svc.List(context.Background(), nil); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotFilter == nil || gotFilter.Page != 1 || gotFilter.Limit != video.DefaultPageSize {
		t.Errorf("expected default pagination, got %+v", gotFilter)
	}
}
