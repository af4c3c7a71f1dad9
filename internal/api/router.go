package api

import (
	"net/http" // HTTP status codes

	"catalog_system/internal/config"     // Application configuration
	"catalog_system/internal/media"      // Media host delegate
	"catalog_system/internal/middleware" // Authorization gates

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter builds the full HTTP surface. Reads are public; product
// mutations sit behind the API-key gate and category mutations behind the
// API-key gate plus the optional internal-secret gate, in that order.
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client, m media.Service) *gin.Engine {
	r := gin.Default() // Gin router instance with logger and recovery

	// CORS restricted to the configured origin allow-list
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "x-api-key", "x-internal-admin"},
		AllowCredentials: true,
	}))

	r.GET("/health", HealthHandler()) // Liveness probe

	// Product routes: public reads, key-gated mutations
	products := r.Group("/api/products")
	products.GET("", ListProductsHandler(db, rdb))
	products.GET("/:id", GetProductHandler(db))
	productMutations := products.Group("", middleware.APIKeyMiddleware(cfg.APIKey))
	productMutations.POST("", CreateProductHandler(db, rdb, m))
	productMutations.PUT("/:id", UpdateProductHandler(db, rdb))
	productMutations.DELETE("/:id", DeleteProductHandler(db, rdb, m))

	// Category routes: public reads, key + internal-secret gated mutations
	categories := r.Group("/api/categories")
	categories.GET("", ListCategoriesHandler(db, rdb))
	categories.GET("/:id", GetCategoryHandler(db))
	categories.GET("/:id/products", CategoryProductsHandler(db, rdb))
	categoryMutations := categories.Group("",
		middleware.APIKeyMiddleware(cfg.APIKey),
		middleware.InternalAdminMiddleware(cfg.InternalSecret))
	categoryMutations.POST("", CreateCategoryHandler(db, rdb))
	categoryMutations.PUT("/:id", UpdateCategoryHandler(db, rdb))
	categoryMutations.DELETE("/:id", DeleteCategoryHandler(db, rdb))

	// Admin routes: login is public, verify requires a valid token
	admin := r.Group("/api/admin")
	admin.POST("/login", LoginHandler(db, cfg.JWTSecret))
	admin.GET("/verify", middleware.JWTAuthMiddleware(db, cfg.JWTSecret), VerifyHandler())

	// Direct-upload signature
	r.POST("/api/uploads/signature", SignatureHandler(cfg.CloudName, cfg.CloudAPIKey, cfg.CloudAPISecret))

	// Unmatched routes
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
