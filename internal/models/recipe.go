package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Difficulty levels accepted for a recipe.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// ValidDifficulty reports whether level is one of the accepted values.
func ValidDifficulty(level string) bool {
	switch level {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// StringArray is a custom type for handling string arrays in JSONB
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

type Recipe struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	Name            string      `gorm:"size:183;uniqueIndex;not null" json:"name"`
	CookingTime     int         `gorm:"not null" json:"cooking_time"`
	DifficultyLevel string      `gorm:"size:10;not null" json:"difficulty_level"`
	Portions        int         `gorm:"not null" json:"portions"`
	Instructions    StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	UserID          uint        `gorm:"not null" json:"user_id"`
	User            User        `json:"-"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	RecipeIngredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"recipe_ingredients,omitempty"`
}

// RecipeIngredient links a recipe to an ingredient and carries the quantity
// used, e.g. "200 grams". It is a real association object, not a bare link
// table.
type RecipeIngredient struct {
	RecipeID     uint       `gorm:"primaryKey" json:"recipe_id"`
	IngredientID uint       `gorm:"primaryKey" json:"ingredient_id"`
	Quantity     string     `gorm:"size:50;not null" json:"quantity"`
	Ingredient   Ingredient `json:"-"`
}

// IsVegan is derived, not stored: a recipe is vegan when every one of its
// ingredients is. A recipe with no ingredients counts as vegan.
func (r *Recipe) IsVegan() bool {
	for _, ri := range r.RecipeIngredients {
		if !ri.Ingredient.IsVegan {
			return false
		}
	}
	return true
}

// IngredientIDs projects the association rows down to ingredient ids.
func (r *Recipe) IngredientIDs() []uint {
	ids := make([]uint, len(r.RecipeIngredients))
	for n, ri := range r.RecipeIngredients {
		ids[n] = ri.IngredientID
	}
	return ids
}
