package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/apperr"
	"github.com/tastebook/backend/internal/models"
)

type CreateCategoryInput struct {
	Name string
}

type UpdateCategoryInput struct {
	Name *string
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, apperr.Internal("CategoryRepository.ListAll", "storage failure").WithCause(err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Ingredients").First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("CategoryRepository.GetByID", "category not found")
		}
		return nil, apperr.Internal("CategoryRepository.GetByID", "storage failure").WithCause(err)
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	category := models.Category{
		Name: models.NormalizeName(input.Name),
	}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, writeError("CategoryRepository.Create", "category already exists", err)
	}
	return &category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id uint, input UpdateCategoryInput) (*models.Category, error) {
	category, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		category.Name = models.NormalizeName(*input.Name)
	}

	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, writeError("CategoryRepository.Update", "category already exists", err)
	}
	return category, nil
}

// resolveCategories fetches categories by id in one batch; unknown ids fail
// with a single error listing every missing id.
func resolveCategories(ctx context.Context, db *gorm.DB, source string, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, apperr.Internal(source, "storage failure").WithCause(err)
	}
	found := make(map[uint]bool, len(categories))
	for _, c := range categories {
		found[c.ID] = true
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, apperr.Validation(source, "unknown category ids: "+formatIDs(missing))
	}
	return categories, nil
}
