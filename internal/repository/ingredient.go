package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/apperr"
	"github.com/tastebook/backend/internal/models"
)

type CreateIngredientInput struct {
	Name        string
	IsVegan     bool
	CategoryIDs []uint
}

type UpdateIngredientInput struct {
	Name        *string
	IsVegan     *bool
	CategoryIDs *[]uint
}

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) ListAll(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := r.db.WithContext(ctx).Preload("Categories").Find(&ingredients).Error; err != nil {
		return nil, apperr.Internal("IngredientRepository.ListAll", "storage failure").WithCause(err)
	}
	return ingredients, nil
}

func (r *IngredientRepository) GetByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.WithContext(ctx).Preload("Categories").First(&ingredient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("IngredientRepository.GetByID", "ingredient not found")
		}
		return nil, apperr.Internal("IngredientRepository.GetByID", "storage failure").WithCause(err)
	}
	return &ingredient, nil
}

func (r *IngredientRepository) Create(ctx context.Context, input CreateIngredientInput) (*models.Ingredient, error) {
	categories, err := resolveCategories(ctx, r.db, "IngredientRepository.Create", input.CategoryIDs)
	if err != nil {
		return nil, err
	}

	ingredient := models.Ingredient{
		Name:       models.NormalizeName(input.Name),
		IsVegan:    input.IsVegan,
		Categories: categories,
	}
	if err := r.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, writeError("IngredientRepository.Create", "ingredient already exists", err)
	}
	return &ingredient, nil
}

func (r *IngredientRepository) Update(ctx context.Context, id uint, input UpdateIngredientInput) (*models.Ingredient, error) {
	ingredient, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if input.CategoryIDs != nil {
		categories, err = resolveCategories(ctx, r.db, "IngredientRepository.Update", *input.CategoryIDs)
		if err != nil {
			return nil, err
		}
	}

	if input.Name != nil {
		ingredient.Name = models.NormalizeName(*input.Name)
	}
	if input.IsVegan != nil {
		ingredient.IsVegan = *input.IsVegan
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(ingredient).Error; err != nil {
			return err
		}
		if input.CategoryIDs != nil {
			assoc := tx.Model(ingredient).Association("Categories")
			if len(categories) == 0 {
				return assoc.Clear()
			}
			return assoc.Replace(&categories)
		}
		return nil
	})
	if err != nil {
		return nil, writeError("IngredientRepository.Update", "ingredient already exists", err)
	}
	if input.CategoryIDs != nil {
		ingredient.Categories = categories
	}
	return ingredient, nil
}
