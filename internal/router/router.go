package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tastebook/backend/config"
	"github.com/tastebook/backend/internal/api"
	"github.com/tastebook/backend/internal/middleware"
	"github.com/tastebook/backend/internal/repository"
	"github.com/tastebook/backend/internal/service"
	"github.com/tastebook/backend/internal/token"
)

// Setup wires repositories, services and handlers onto a gin engine.
// redisClient may be nil; the login rate limiter is skipped then.
func Setup(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) (*gin.Engine, error) {
	codec, err := token.NewCodec(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	authService := service.NewAuthService(userRepo, codec, cfg.AccessTokenTTL)

	var rateLimit gin.HandlerFunc
	if redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    cfg.LoginRateWindow,
			Limit:     cfg.LoginRateLimit,
			KeyPrefix: "login",
		})
		rateLimit = limiter.Middleware()
	}

	engine := gin.Default()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(cfg.AllowedOrigins))

	v1 := engine.Group("/api/v1")
	{
		api.NewAuthHandler(authService, rateLimit).RegisterRoutes(v1)
		api.NewUserHandler(userRepo, authService).RegisterRoutes(v1)
		api.NewIngredientHandler(ingredientRepo, authService).RegisterRoutes(v1)
		api.NewCategoryHandler(categoryRepo, authService).RegisterRoutes(v1)
		api.NewRecipeHandler(recipeRepo, authService).RegisterRoutes(v1)
	}

	return engine, nil
}
