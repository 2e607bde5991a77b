package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/apperr"
	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/repository"
	"github.com/tastebook/backend/internal/testhelpers"
)

type recipeFixture struct {
	db          *gorm.DB
	recipes     *repository.RecipeRepository
	ingredients *repository.IngredientRepository
	users       *repository.UserRepository

	userID     uint
	cucumberID uint
	yogurtID   uint
}

func newRecipeFixture(t *testing.T) *recipeFixture {
	db := testhelpers.SetupTestDatabase(t)
	f := &recipeFixture{
		db:          db,
		recipes:     repository.NewRecipeRepository(db),
		ingredients: repository.NewIngredientRepository(db),
		users:       repository.NewUserRepository(db),
	}

	ctx := context.Background()
	user, err := f.users.Create(ctx, repository.CreateUserInput{
		Username:     "chef",
		Email:        "chef@example.com",
		PasswordHash: "digest",
		IsActive:     true,
	})
	require.NoError(t, err)
	f.userID = user.ID

	cucumber, err := f.ingredients.Create(ctx, repository.CreateIngredientInput{Name: "cucumber", IsVegan: true})
	require.NoError(t, err)
	f.cucumberID = cucumber.ID

	yogurt, err := f.ingredients.Create(ctx, repository.CreateIngredientInput{Name: "yogurt", IsVegan: false})
	require.NoError(t, err)
	f.yogurtID = yogurt.ID

	return f
}

func (f *recipeFixture) tzatziki(t *testing.T) *models.Recipe {
	t.Helper()
	recipe, err := f.recipes.Create(context.Background(), repository.CreateRecipeInput{
		Name:            "Tzatziki",
		CookingTime:     15,
		DifficultyLevel: models.DifficultyEasy,
		Portions:        4,
		Instructions:    []string{"Grate the cucumber.", "Mix with yogurt."},
		UserID:          f.userID,
		Ingredients: []repository.RecipeIngredientInput{
			{IngredientID: f.cucumberID, Quantity: "1"},
			{IngredientID: f.yogurtID, Quantity: "200 grams"},
		},
	})
	require.NoError(t, err)
	return recipe
}

func TestRecipeCreate(t *testing.T) {
	f := newRecipeFixture(t)

	recipe := f.tzatziki(t)

	assert.Equal(t, "tzatziki", recipe.Name)
	assert.NotZero(t, recipe.ID)
	assert.False(t, recipe.CreatedAt.IsZero())
	assert.ElementsMatch(t, []uint{f.cucumberID, f.yogurtID}, recipe.IngredientIDs())
	assert.False(t, recipe.IsVegan())

	for _, ri := range recipe.RecipeIngredients {
		if ri.IngredientID == f.yogurtID {
			assert.Equal(t, "200 grams", ri.Quantity)
		}
	}
}

func TestRecipeDuplicateNameConflicts(t *testing.T) {
	f := newRecipeFixture(t)

	f.tzatziki(t)

	_, err := f.recipes.Create(context.Background(), repository.CreateRecipeInput{
		Name:            "TZATZIKI",
		CookingTime:     10,
		DifficultyLevel: models.DifficultyEasy,
		Portions:        2,
		Instructions:    []string{"Mix."},
		UserID:          f.userID,
	})
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
}

func TestRecipeCreateUnknownUser(t *testing.T) {
	f := newRecipeFixture(t)

	_, err := f.recipes.Create(context.Background(), repository.CreateRecipeInput{
		Name:            "tzatziki",
		CookingTime:     15,
		DifficultyLevel: models.DifficultyEasy,
		Portions:        4,
		Instructions:    []string{"Mix."},
		UserID:          999,
	})
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
}

// All missing ingredient ids are reported together, not just the first.
func TestRecipeCreateReportsAllMissingIngredients(t *testing.T) {
	f := newRecipeFixture(t)

	_, err := f.recipes.Create(context.Background(), repository.CreateRecipeInput{
		Name:            "mystery stew",
		CookingTime:     60,
		DifficultyLevel: models.DifficultyHard,
		Portions:        2,
		Instructions:    []string{"Simmer."},
		UserID:          f.userID,
		Ingredients: []repository.RecipeIngredientInput{
			{IngredientID: f.cucumberID, Quantity: "1"},
			{IngredientID: 999, Quantity: "2"},
			{IngredientID: 1234, Quantity: "a pinch"},
		},
	})
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Message, "999")
	assert.Contains(t, appErr.Message, "1234")
}

// Supplying only portions must leave every other field untouched.
func TestRecipePartialUpdate(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := f.tzatziki(t)

	portions := 8
	updated, err := f.recipes.Update(ctx, recipe.ID, repository.UpdateRecipeInput{Portions: &portions})
	require.NoError(t, err)

	assert.Equal(t, 8, updated.Portions)
	assert.Equal(t, "tzatziki", updated.Name)
	assert.Equal(t, 15, updated.CookingTime)
	assert.Equal(t, models.StringArray{"Grate the cucumber.", "Mix with yogurt."}, updated.Instructions)
	assert.ElementsMatch(t, []uint{f.cucumberID, f.yogurtID}, updated.IngredientIDs())
}

func TestRecipeUpdateReplacesIngredients(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := f.tzatziki(t)

	newIngredients := []repository.RecipeIngredientInput{
		{IngredientID: f.cucumberID, Quantity: "2"},
	}
	updated, err := f.recipes.Update(ctx, recipe.ID, repository.UpdateRecipeInput{Ingredients: &newIngredients})
	require.NoError(t, err)

	assert.Equal(t, []uint{f.cucumberID}, updated.IngredientIDs())
	assert.True(t, updated.IsVegan())
}

// Deleting a recipe removes its association rows but the ingredients stay.
func TestRecipeDeleteCascades(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := f.tzatziki(t)

	deleted, err := f.recipes.Delete(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, recipe.ID, deleted.ID)
	assert.Len(t, deleted.RecipeIngredients, 2)

	_, err = f.recipes.GetByID(ctx, recipe.ID)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)

	var remaining int64
	require.NoError(t, f.db.Model(&models.RecipeIngredient{}).
		Where("recipe_id = ?", recipe.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	_, err = f.ingredients.GetByID(ctx, f.cucumberID)
	assert.NoError(t, err)
	_, err = f.ingredients.GetByID(ctx, f.yogurtID)
	assert.NoError(t, err)
}

func TestRecipeDeleteNotFound(t *testing.T) {
	f := newRecipeFixture(t)

	_, err := f.recipes.Delete(context.Background(), 999)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func TestRecipeListByUser(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	f.tzatziki(t)

	other, err := f.users.Create(ctx, repository.CreateUserInput{
		Username:     "guest",
		Email:        "guest@example.com",
		PasswordHash: "digest",
		IsActive:     true,
	})
	require.NoError(t, err)

	mine, err := f.recipes.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := f.recipes.ListByUser(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}
