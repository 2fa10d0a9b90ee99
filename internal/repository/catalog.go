package repository

import (
	"context"
	"errors"

	"homegenie/internal/cache"
	"homegenie/internal/models"
	"homegenie/internal/observability"

	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a new CategoryRepository implementation.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.ServiceCategory, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "categories.list", "service_categories")
	defer span.End()

	var categories []models.ServiceCategory
	err := cache.Aside(ctx, cache.CategoriesListKey, &categories, cache.CategoryTTL, func() error {
		if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.ServiceCategory, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "categories.get_by_id", "service_categories")
	defer span.End()

	var category models.ServiceCategory
	key := cache.CategoryKey(id)

	err := cache.Aside(ctx, key, &category, cache.CategoryTTL, func() error {
		return r.db.WithContext(ctx).First(&category, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, models.NewInternalError(err)
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.ServiceCategory) error {
	ctx, span := observability.TraceRepositoryMethod(ctx, "categories.create", "service_categories")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		span.RecordError(err)
		return models.NewInternalError(err)
	}
	cache.InvalidateCategories(ctx, category.ID)
	return nil
}

type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository returns a new ProviderRepository implementation.
func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) List(ctx context.Context) ([]models.ServiceProvider, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "providers.list", "service_providers")
	defer span.End()

	var providers []models.ServiceProvider
	err := cache.Aside(ctx, cache.ProvidersListKey, &providers, cache.ProviderTTL, func() error {
		if err := r.db.WithContext(ctx).Order("id").Find(&providers).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return providers, nil
}

func (r *providerRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.ServiceProvider, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "providers.list_by_category", "service_providers")
	defer span.End()

	var providers []models.ServiceProvider
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&providers).Error; err != nil {
		span.RecordError(err)
		return nil, models.NewInternalError(err)
	}
	return providers, nil
}

func (r *providerRepository) GetByID(ctx context.Context, id uint) (*models.ServiceProvider, error) {
	ctx, span := observability.TraceRepositoryMethod(ctx, "providers.get_by_id", "service_providers")
	defer span.End()

	var provider models.ServiceProvider
	key := cache.ProviderKey(id)

	err := cache.Aside(ctx, key, &provider, cache.ProviderTTL, func() error {
		return r.db.WithContext(ctx).First(&provider, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		span.RecordError(err)
		return nil, models.NewInternalError(err)
	}
	return &provider, nil
}

func (r *providerRepository) Create(ctx context.Context, provider *models.ServiceProvider) error {
	ctx, span := observability.TraceRepositoryMethod(ctx, "providers.create", "service_providers")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(provider).Error; err != nil {
		span.RecordError(err)
		return models.NewInternalError(err)
	}
	cache.InvalidateProviders(ctx, provider.ID)
	return nil
}
