package api

import (
	"context" // Context for cache operations
	"strconv" // Route param parsing

	"catalog_system/internal/utils" // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Cache keys for the read-heavy list endpoints
const (
	productListKey      = "products:all"
	categoryListKey     = "categories:all"
	categoryCachePrefix = "categories:"
)

// parseID parses the :id route param; catalog IDs are positive integers
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// bindRawJSON decodes the request body into a raw map so the validation
// layer can coerce field by field
func bindRawJSON(c *gin.Context) (map[string]any, bool) {
	raw := make(map[string]any)
	if err := c.ShouldBindJSON(&raw); err != nil {
		return nil, false
	}
	return raw, true
}

// invalidateCatalogCache drops every cached catalog read. Mutations are
// rare compared to reads, so a blanket invalidation keeps things simple.
func invalidateCatalogCache(rdb *redis.Client) {
	if rdb == nil {
		return // Caching not wired in this deployment
	}
	ctx := context.Background()
	_ = utils.DeleteCache(ctx, rdb, productListKey)
	_ = utils.DeleteCacheByPrefix(ctx, rdb, categoryCachePrefix)
}
