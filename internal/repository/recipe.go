package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/apperr"
	"github.com/tastebook/backend/internal/models"
)

// RecipeIngredientInput pairs an ingredient id with the quantity used.
type RecipeIngredientInput struct {
	IngredientID uint
	Quantity     string
}

type CreateRecipeInput struct {
	Name            string
	CookingTime     int
	DifficultyLevel string
	Portions        int
	Instructions    []string
	UserID          uint
	Ingredients     []RecipeIngredientInput
}

type UpdateRecipeInput struct {
	Name            *string
	CookingTime     *int
	DifficultyLevel *string
	Portions        *int
	Instructions    *[]string
	Ingredients     *[]RecipeIngredientInput
}

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) ListAll(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).Preload("RecipeIngredients.Ingredient").Find(&recipes).Error
	if err != nil {
		return nil, apperr.Internal("RecipeRepository.ListAll", "storage failure").WithCause(err)
	}
	return recipes, nil
}

func (r *RecipeRepository) ListByUser(ctx context.Context, userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).Preload("RecipeIngredients.Ingredient").
		Where("user_id = ?", userID).Find(&recipes).Error
	if err != nil {
		return nil, apperr.Internal("RecipeRepository.ListByUser", "storage failure").WithCause(err)
	}
	return recipes, nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).Preload("RecipeIngredients.Ingredient").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("RecipeRepository.GetByID", "recipe not found")
		}
		return nil, apperr.Internal("RecipeRepository.GetByID", "storage failure").WithCause(err)
	}
	return &recipe, nil
}

func (r *RecipeRepository) Create(ctx context.Context, input CreateRecipeInput) (*models.Recipe, error) {
	const source = "RecipeRepository.Create"

	if !models.ValidDifficulty(input.DifficultyLevel) {
		return nil, apperr.Validation(source, "difficulty_level must be Easy, Medium or Hard")
	}

	var owner models.User
	if err := r.db.WithContext(ctx).First(&owner, "id = ?", input.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation(source, "unknown user id")
		}
		return nil, apperr.Internal(source, "storage failure").WithCause(err)
	}

	associations, err := r.buildAssociations(ctx, source, input.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Name:              models.NormalizeName(input.Name),
		CookingTime:       input.CookingTime,
		DifficultyLevel:   input.DifficultyLevel,
		Portions:          input.Portions,
		Instructions:      input.Instructions,
		UserID:            input.UserID,
		RecipeIngredients: associations,
	}
	if err := r.db.WithContext(ctx).Omit("RecipeIngredients.Ingredient").Create(&recipe).Error; err != nil {
		return nil, writeError(source, "recipe name already exists", err)
	}
	return r.GetByID(ctx, recipe.ID)
}

func (r *RecipeRepository) Update(ctx context.Context, id uint, input UpdateRecipeInput) (*models.Recipe, error) {
	const source = "RecipeRepository.Update"

	if input.DifficultyLevel != nil && !models.ValidDifficulty(*input.DifficultyLevel) {
		return nil, apperr.Validation(source, "difficulty_level must be Easy, Medium or Hard")
	}

	recipe, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var associations []models.RecipeIngredient
	if input.Ingredients != nil {
		associations, err = r.buildAssociations(ctx, source, *input.Ingredients)
		if err != nil {
			return nil, err
		}
		for i := range associations {
			associations[i].RecipeID = recipe.ID
		}
	}

	if input.Name != nil {
		recipe.Name = models.NormalizeName(*input.Name)
	}
	if input.CookingTime != nil {
		recipe.CookingTime = *input.CookingTime
	}
	if input.DifficultyLevel != nil {
		recipe.DifficultyLevel = *input.DifficultyLevel
	}
	if input.Portions != nil {
		recipe.Portions = *input.Portions
	}
	if input.Instructions != nil {
		recipe.Instructions = *input.Instructions
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("RecipeIngredients", "User").Save(recipe).Error; err != nil {
			return err
		}
		if input.Ingredients == nil {
			return nil
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(associations) == 0 {
			return nil
		}
		return tx.Omit("Ingredient").Create(&associations).Error
	})
	if err != nil {
		return nil, writeError(source, "recipe name already exists", err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the recipe and its association rows; referenced ingredients
// are left untouched. The captured entity is returned after the row is gone.
func (r *RecipeRepository) Delete(ctx context.Context, id uint) (*models.Recipe, error) {
	const source = "RecipeRepository.Delete"

	recipe, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", recipe.ID).Error
	})
	if err != nil {
		return nil, apperr.Internal(source, "storage failure").WithCause(err)
	}
	return recipe, nil
}

// buildAssociations resolves every referenced ingredient in one batch and
// reports all unknown ids together rather than failing on the first.
func (r *RecipeRepository) buildAssociations(ctx context.Context, source string, inputs []RecipeIngredientInput) ([]models.RecipeIngredient, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	ids := make([]uint, len(inputs))
	for i, in := range inputs {
		ids[i] = in.IngredientID
	}

	var ingredients []models.Ingredient
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, apperr.Internal(source, "storage failure").WithCause(err)
	}
	found := make(map[uint]bool, len(ingredients))
	for _, ing := range ingredients {
		found[ing.ID] = true
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, apperr.Validation(source, "unknown ingredient ids: "+formatIDs(missing))
	}

	associations := make([]models.RecipeIngredient, len(inputs))
	for i, in := range inputs {
		associations[i] = models.RecipeIngredient{
			IngredientID: in.IngredientID,
			Quantity:     in.Quantity,
		}
	}
	return associations, nil
}
