// Command seed loads a small set of sample data for local development.
package main

import (
	"context"
	"log"

	"github.com/tastebook/backend/config"
	"github.com/tastebook/backend/internal/database"
	"github.com/tastebook/backend/internal/repository"
	"github.com/tastebook/backend/internal/service"
	"github.com/tastebook/backend/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	codec, err := token.NewCodec(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatalf("Failed to build token codec: %v", err)
	}

	users := repository.NewUserRepository(db)
	categories := repository.NewCategoryRepository(db)
	ingredients := repository.NewIngredientRepository(db)
	recipes := repository.NewRecipeRepository(db)
	auth := service.NewAuthService(users, codec, cfg.AccessTokenTTL)

	chef, err := auth.Register(ctx, service.RegisterInput{
		Username: "chef",
		Email:    "chef@example.com",
		FullName: "Sample Chef",
		Password: "kitchen-secret",
	})
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	vegetables, err := categories.Create(ctx, repository.CreateCategoryInput{Name: "Vegetables"})
	if err != nil {
		log.Fatalf("Failed to seed category: %v", err)
	}
	dairy, err := categories.Create(ctx, repository.CreateCategoryInput{Name: "Dairy"})
	if err != nil {
		log.Fatalf("Failed to seed category: %v", err)
	}

	cucumber, err := ingredients.Create(ctx, repository.CreateIngredientInput{
		Name:        "Cucumber",
		IsVegan:     true,
		CategoryIDs: []uint{vegetables.ID},
	})
	if err != nil {
		log.Fatalf("Failed to seed ingredient: %v", err)
	}
	yogurt, err := ingredients.Create(ctx, repository.CreateIngredientInput{
		Name:        "Yogurt",
		IsVegan:     false,
		CategoryIDs: []uint{dairy.ID},
	})
	if err != nil {
		log.Fatalf("Failed to seed ingredient: %v", err)
	}

	if _, err := recipes.Create(ctx, repository.CreateRecipeInput{
		Name:            "Tzatziki",
		CookingTime:     15,
		DifficultyLevel: "Easy",
		Portions:        4,
		Instructions:    []string{"Grate the cucumber.", "Mix with yogurt and season."},
		UserID:          chef.ID,
		Ingredients: []repository.RecipeIngredientInput{
			{IngredientID: cucumber.ID, Quantity: "1"},
			{IngredientID: yogurt.ID, Quantity: "200 grams"},
		},
	}); err != nil {
		log.Fatalf("Failed to seed recipe: %v", err)
	}

	log.Println("Seed data loaded")
}
