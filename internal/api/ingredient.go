package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebook/backend/internal/middleware"
	"github.com/tastebook/backend/internal/repository"
	"github.com/tastebook/backend/internal/service"
)

type IngredientHandler struct {
	ingredients *repository.IngredientRepository
	authService *service.AuthService
}

func NewIngredientHandler(ingredients *repository.IngredientRepository, authService *service.AuthService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients, authService: authService}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.GET("/:id", h.GetIngredient)
		ingredients.POST("", middleware.Auth(h.authService), h.CreateIngredient)
		ingredients.PUT("/:id", middleware.Auth(h.authService), h.UpdateIngredient)
	}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredients.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]IngredientResponse, len(ingredients))
	for i := range ingredients {
		out[i] = toIngredientResponse(&ingredients[i])
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": out})
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	ingredient, err := h.ingredients.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toIngredientResponse(ingredient))
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ingredient, err := h.ingredients.Create(c.Request.Context(), repository.CreateIngredientInput{
		Name:        req.Name,
		IsVegan:     *req.IsVegan,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toIngredientResponse(ingredient))
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	var req UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ingredient, err := h.ingredients.Update(c.Request.Context(), id, repository.UpdateIngredientInput{
		Name:        req.Name,
		IsVegan:     req.IsVegan,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toIngredientResponse(ingredient))
}
