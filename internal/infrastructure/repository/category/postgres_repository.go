package category

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "video-catalog-api/internal/domain/category"
	"video-catalog-api/internal/infrastructure/database/entities"
	"video-catalog-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for categories.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateIfAbsent inserts the named category with ON CONFLICT (name) DO
// NOTHING and re-reads on conflict, so concurrent first use of the same name
// cannot produce duplicate rows. The unique constraint carries the
// atomicity; there is no check-then-insert window.
func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, name string) (*domain.Category, bool, error) {
	entity := entities.Category{Name: name}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&entity)
	if res.Error != nil {
		return nil, false, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create category",
			res.Error,
			"category-create-db-001",
		)
	}

	if res.RowsAffected > 0 {
		return mapEntity(&entity), true, nil
	}

	existing, err := r.FindByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		// The conflicting row vanished between insert and re-read; callers
		// treat this as a storage failure rather than retrying internally.
		return nil, false, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"category disappeared during resolution",
			nil,
			"category-create-reread-001",
		)
	}
	return existing, false, nil
}

// FindByName returns the category with the exact name, or nil when absent.
func (r *PostgresRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var entity entities.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find category by name",
			err,
			"category-find-db-001",
		)
	}
	return mapEntity(&entity), nil
}

// List returns all categories ordered by name ascending.
func (r *PostgresRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var rows []entities.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list categories",
			err,
			"category-list-db-001",
		)
	}

	categories := make([]*domain.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, mapEntity(&rows[i]))
	}
	return categories, nil
}

func mapEntity(entity *entities.Category) *domain.Category {
	return &domain.Category{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: entity.CreatedAt,
	}
}
