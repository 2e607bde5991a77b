package api

import (
	"time"

	"github.com/tastebook/backend/internal/models"
)

// Request payloads. Update payloads use pointer fields so absent keys never
// overwrite stored values.

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	FullName string `json:"full_name" binding:"max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,max=50"`
	Email    *string `json:"email" binding:"omitempty,email,max=100"`
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
	IsActive *bool   `json:"is_active"`
}

type CreateIngredientRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	IsVegan     *bool  `json:"is_vegan" binding:"required"`
	CategoryIDs []uint `json:"category_ids"`
}

type UpdateIngredientRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	IsVegan     *bool   `json:"is_vegan"`
	CategoryIDs *[]uint `json:"category_ids"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

type RecipeIngredientRequest struct {
	IngredientID uint   `json:"ingredient_id" binding:"required"`
	Quantity     string `json:"quantity" binding:"required,max=50"`
}

type CreateRecipeRequest struct {
	Name            string                    `json:"name" binding:"required,max=183"`
	CookingTime     int                       `json:"cooking_time" binding:"required,min=1"`
	DifficultyLevel string                    `json:"difficulty_level" binding:"required,oneof=Easy Medium Hard"`
	Portions        int                       `json:"portions" binding:"required,min=1"`
	Instructions    []string                  `json:"instructions" binding:"required,min=1"`
	Ingredients     []RecipeIngredientRequest `json:"ingredients" binding:"omitempty,dive"`
}

type UpdateRecipeRequest struct {
	Name            *string                    `json:"name" binding:"omitempty,max=183"`
	CookingTime     *int                       `json:"cooking_time" binding:"omitempty,min=1"`
	DifficultyLevel *string                    `json:"difficulty_level" binding:"omitempty,oneof=Easy Medium Hard"`
	Portions        *int                       `json:"portions" binding:"omitempty,min=1"`
	Instructions    *[]string                  `json:"instructions"`
	Ingredients     *[]RecipeIngredientRequest `json:"ingredients" binding:"omitempty,dive"`
}

// Response payloads. Stored names are lower-case; capitalization happens here
// and nowhere else.

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type IngredientResponse struct {
	ID         uint               `json:"id"`
	Name       string             `json:"name"`
	IsVegan    bool               `json:"is_vegan"`
	Categories []CategoryResponse `json:"categories"`
	CreatedAt  time.Time          `json:"created_at"`
}

type RecipeIngredientResponse struct {
	IngredientID uint   `json:"ingredient_id"`
	Name         string `json:"name"`
	Quantity     string `json:"quantity"`
}

type RecipeResponse struct {
	ID              uint                       `json:"id"`
	Name            string                     `json:"name"`
	CookingTime     int                        `json:"cooking_time"`
	DifficultyLevel string                     `json:"difficulty_level"`
	Portions        int                        `json:"portions"`
	IsVegan         bool                       `json:"is_vegan"`
	Instructions    []string                   `json:"instructions"`
	Ingredients     []RecipeIngredientResponse `json:"ingredients"`
	UserID          uint                       `json:"user_id"`
	CreatedAt       time.Time                  `json:"created_at"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func toCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      models.DisplayName(category.Name),
		CreatedAt: category.CreatedAt,
	}
}

func toIngredientResponse(ingredient *models.Ingredient) IngredientResponse {
	categories := make([]CategoryResponse, len(ingredient.Categories))
	for i := range ingredient.Categories {
		categories[i] = toCategoryResponse(&ingredient.Categories[i])
	}
	return IngredientResponse{
		ID:         ingredient.ID,
		Name:       models.DisplayName(ingredient.Name),
		IsVegan:    ingredient.IsVegan,
		Categories: categories,
		CreatedAt:  ingredient.CreatedAt,
	}
}

func toRecipeResponse(recipe *models.Recipe) RecipeResponse {
	ingredients := make([]RecipeIngredientResponse, len(recipe.RecipeIngredients))
	for i, ri := range recipe.RecipeIngredients {
		ingredients[i] = RecipeIngredientResponse{
			IngredientID: ri.IngredientID,
			Name:         models.DisplayName(ri.Ingredient.Name),
			Quantity:     ri.Quantity,
		}
	}
	instructions := recipe.Instructions
	if instructions == nil {
		instructions = []string{}
	}
	return RecipeResponse{
		ID:              recipe.ID,
		Name:            models.DisplayName(recipe.Name),
		CookingTime:     recipe.CookingTime,
		DifficultyLevel: recipe.DifficultyLevel,
		Portions:        recipe.Portions,
		IsVegan:         recipe.IsVegan(),
		Instructions:    instructions,
		Ingredients:     ingredients,
		UserID:          recipe.UserID,
		CreatedAt:       recipe.CreatedAt,
	}
}
