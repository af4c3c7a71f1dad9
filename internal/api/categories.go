package api

import (
	"context"  // Context for cache operations
	"errors"   // Sentinel error matching
	"fmt"      // Cache key formatting
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"catalog_system/internal/domain"     // Importing domain models
	"catalog_system/internal/utils"      // Cache helpers
	"catalog_system/internal/validation" // Payload validation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
	"gorm.io/gorm"                 // GORM ORM library
)

// ListCategoriesHandler returns every category, alphabetically
func ListCategoriesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb != nil {
			var cached []domain.Category // Try the cache first
			found, err := utils.GetCache(context.Background(), rdb, categoryListKey, &cached)
			if err == nil && found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		var categories []domain.Category
		if err := db.Order("name asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		if rdb != nil {
			_ = utils.SetCache(context.Background(), rdb, categoryListKey, categories, 60*time.Second)
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetCategoryHandler returns a single category by ID
func GetCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		var category domain.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// CategoryProductsHandler returns the products of one category, newest first
func CategoryProductsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		var category domain.Category // Existence check for a clean 404
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		cacheKey := fmt.Sprintf("categories:%d:products", id)
		if rdb != nil {
			var cached []domain.Product
			found, err := utils.GetCache(context.Background(), rdb, cacheKey, &cached)
			if err == nil && found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		var products []domain.Product
		if err := db.Where("category_id = ?", id).Order("created_at desc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category products"})
			return
		}
		if rdb != nil {
			_ = utils.SetCache(context.Background(), rdb, cacheKey, products, 60*time.Second)
		}
		c.JSON(http.StatusOK, products)
	}
}

// CreateCategoryHandler creates a category; a duplicate name is a conflict
func CreateCategoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bindRawJSON(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
			return
		}
		in, fieldErrs := validation.ValidateCategory(raw, false)
		if fieldErrs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrs})
			return
		}
		category := domain.Category{Name: *in.Name, Description: in.Description}
		if err := db.Create(&category).Error; err != nil {
			// The unique index on name is the only constraint that can trip here
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Category name already exists"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to create category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		invalidateCatalogCache(rdb)
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategoryHandler applies a partial update to a category
func UpdateCategoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		raw, ok := bindRawJSON(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
			return
		}
		in, fieldErrs := validation.ValidateCategory(raw, true)
		if fieldErrs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrs})
			return
		}
		var category domain.Category // Existence check for a clean 404
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		if in.Name != nil {
			category.Name = *in.Name
		}
		if in.Description != nil {
			category.Description = in.Description
		}
		if err := db.Save(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Category name already exists"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"category_id": id,
				"error":       err.Error(),
			}).Error("Failed to update category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		invalidateCatalogCache(rdb)
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategoryHandler removes a category; products keep existing with a
// cleared categoryId, per the store's SET NULL constraint
func DeleteCategoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		var category domain.Category // Existence check for a clean 404
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		if err := db.Delete(&category).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"category_id": id,
				"error":       err.Error(),
			}).Error("Failed to delete category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		invalidateCatalogCache(rdb)
		c.Status(http.StatusNoContent)
	}
}
