package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebook/backend/internal/middleware"
	"github.com/tastebook/backend/internal/repository"
	"github.com/tastebook/backend/internal/service"
)

type RecipeHandler struct {
	recipes     *repository.RecipeRepository
	authService *service.AuthService
}

func NewRecipeHandler(recipes *repository.RecipeRepository, authService *service.AuthService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, authService: authService}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", middleware.Auth(h.authService), h.CreateRecipe)
		recipes.PUT("/:id", middleware.Auth(h.authService), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.Auth(h.authService), h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]RecipeResponse, len(recipes))
	for i := range recipes {
		out[i] = toRecipeResponse(&recipes[i])
	}
	c.JSON(http.StatusOK, gin.H{"recipes": out})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := h.recipes.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), repository.CreateRecipeInput{
		Name:            req.Name,
		CookingTime:     req.CookingTime,
		DifficultyLevel: req.DifficultyLevel,
		Portions:        req.Portions,
		Instructions:    req.Instructions,
		UserID:          user.ID,
		Ingredients:     toIngredientInputs(req.Ingredients),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRecipeResponse(recipe))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	input := repository.UpdateRecipeInput{
		Name:            req.Name,
		CookingTime:     req.CookingTime,
		DifficultyLevel: req.DifficultyLevel,
		Portions:        req.Portions,
		Instructions:    req.Instructions,
	}
	if req.Ingredients != nil {
		inputs := toIngredientInputs(*req.Ingredients)
		input.Ingredients = &inputs
	}

	recipe, err := h.recipes.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// DeleteRecipe removes the recipe and returns its last representation; the
// row is gone by the time the client reads the response.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := h.recipes.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

func toIngredientInputs(reqs []RecipeIngredientRequest) []repository.RecipeIngredientInput {
	inputs := make([]repository.RecipeIngredientInput, len(reqs))
	for i, r := range reqs {
		inputs[i] = repository.RecipeIngredientInput{
			IngredientID: r.IngredientID,
			Quantity:     r.Quantity,
		}
	}
	return inputs
}
