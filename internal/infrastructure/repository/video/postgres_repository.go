package video

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "video-catalog-api/internal/domain/video"
	"video-catalog-api/internal/infrastructure/database/entities"
	"video-catalog-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for catalog entries.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// videoRow carries one joined row: the video columns plus the display names
// resolved through the category and uploader outer joins.
type videoRow struct {
	entities.Video
	CategoryName       *string
	UploadedByUsername *string
}

const joinedColumns = "videos.*, categories.name AS category_name, users.username AS uploaded_by_username"

// joined builds the base query with both outer joins so rows without a
// category or uploader still appear.
func (r *PostgresRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&entities.Video{}).
		Joins("LEFT JOIN categories ON categories.id = videos.category_id").
		Joins("LEFT JOIN users ON users.id = videos.uploaded_by")
}

// Create inserts a new video record.
func (r *PostgresRepository) Create(ctx context.Context, v *domain.Video) error {
	entity := entities.Video{
		Title:       v.Title,
		Description: v.Description,
		Src:         v.Src,
		Type:        v.Type,
		Poster:      v.Poster,
		Duration:    v.Duration,
		Resolution:  v.Resolution,
		Size:        v.Size,
		Status:      string(v.Status),
		CategoryID:  v.CategoryID,
		UploadedBy:  v.UploadedBy,
	}

	if err := r.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create video",
			err,
			"video-create-db-001",
		)
	}

	v.ID = entity.ID
	v.CreatedAt = entity.CreatedAt
	v.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByID fetches a single join-enriched video.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*domain.Video, error) {
	var row videoRow
	err := r.joined(ctx).
		Select(joinedColumns).
		Where("videos.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"video not found",
				err,
				"video-find-notfound-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find video",
			err,
			"video-find-db-001",
		)
	}

	return mapRow(&row), nil
}

// List returns one page of videos plus the total count under the same
// filter. The two reads are independent queries and are not required to be
// snapshot-consistent with each other; a row inserted or deleted between
// them may skew the total. That relaxation is accepted for a listing
// endpoint.
func (r *PostgresRepository) List(ctx context.Context, filter *domain.Filter) ([]*domain.Video, int64, error) {
	query := r.joined(ctx)
	if filter.Category != nil {
		query = query.Where("categories.name = ?", *filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count videos",
			err,
			"video-list-count-001",
		)
	}

	// Identifier descending breaks creation-time ties so page windows stay
	// stable across requests.
	var rows []videoRow
	if err := query.
		Select(joinedColumns).
		Order("videos.created_at DESC, videos.id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list videos",
			err,
			"video-list-db-001",
		)
	}

	videos := make([]*domain.Video, 0, len(rows))
	for i := range rows {
		videos = append(videos, mapRow(&rows[i]))
	}

	return videos, total, nil
}

// Update applies only the fields present in params, composing the column map
// from the sparse field set. The resolved category identifier replaces the
// category name when one was supplied.
func (r *PostgresRepository) Update(ctx context.Context, id int64, params domain.UpdateParams, categoryID *int64) error {
	updates := map[string]interface{}{}
	if params.Title != nil {
		updates["title"] = *params.Title
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.Src != nil {
		updates["src"] = *params.Src
	}
	if params.Type != nil {
		updates["type"] = *params.Type
	}
	if params.Poster != nil {
		updates["poster"] = *params.Poster
	}
	if params.Duration != nil {
		updates["duration"] = *params.Duration
	}
	if params.Resolution != nil {
		updates["resolution"] = *params.Resolution
	}
	if params.Size != nil {
		updates["size"] = *params.Size
	}
	if params.Status != nil {
		updates["status"] = string(*params.Status)
	}
	if params.Category != nil {
		updates["category_id"] = categoryID
	}
	if params.UploadedBy != nil {
		updates["uploaded_by"] = *params.UploadedBy
	}

	res := r.db.WithContext(ctx).
		Model(&entities.Video{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update video",
			res.Error,
			"video-update-db-001",
		)
	}
	if res.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"video not found",
			nil,
			"video-update-notfound-001",
		)
	}
	return nil
}

// Delete removes a video physically.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&entities.Video{}, id)
	if res.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete video",
			res.Error,
			"video-delete-db-001",
		)
	}
	if res.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"video not found",
			nil,
			"video-delete-notfound-001",
		)
	}
	return nil
}

func mapRow(row *videoRow) *domain.Video {
	return &domain.Video{
		ID:                 row.ID,
		Title:              row.Title,
		Description:        row.Description,
		Src:                row.Src,
		Type:               row.Type,
		Poster:             row.Poster,
		Duration:           row.Duration,
		Resolution:         row.Resolution,
		Size:               row.Size,
		Status:             domain.Status(row.Status),
		CategoryID:         row.CategoryID,
		UploadedBy:         row.UploadedBy,
		CategoryName:       row.CategoryName,
		UploadedByUsername: row.UploadedByUsername,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
