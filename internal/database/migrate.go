package database

import (
	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/models"
)

// Migrate creates or updates the schema for every model, including the
// ingredient_categories link table and the recipe_ingredients association.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
	)
}
