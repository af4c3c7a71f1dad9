package api

import (
	"context"  // Context for cache and media operations
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"catalog_system/internal/domain"     // Importing domain models
	"catalog_system/internal/media"      // Media host delegate
	"catalog_system/internal/utils"      // Cache helpers
	"catalog_system/internal/validation" // Payload validation

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
	"gorm.io/gorm"                 // GORM ORM library
)

// ListProductsHandler returns every product, newest first, with its category
func ListProductsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb != nil {
			var cached []domain.Product // Try the cache first
			found, err := utils.GetCache(context.Background(), rdb, productListKey, &cached)
			if err == nil && found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		var products []domain.Product
		if err := db.Preload("Category").Order("created_at desc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if rdb != nil {
			_ = utils.SetCache(context.Background(), rdb, productListKey, products, 60*time.Second)
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductHandler returns a single product by ID
func GetProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		var product domain.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// CreateProductHandler creates a product from a JSON body or a multipart
// form; a multipart "image" file is uploaded to the media host first and
// its URL/handle stored on the product
func CreateProductHandler(db *gorm.DB, rdb *redis.Client, m media.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, hasImage, ok := productPayload(c) // Raw fields plus optional image
		if !ok {
			return // Response already written
		}
		in, fieldErrs := validation.ValidateProduct(raw, false)
		if fieldErrs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrs})
			return
		}
		var product domain.Product
		applyProductInput(&product, in)
		// Upload the image before touching the store so a failed upload
		// never leaves a product without its promised image
		if hasImage {
			result, err := uploadFormImage(c, m)
			if err != nil {
				logrus.WithField("error", err.Error()).Error("Image upload failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
				return
			}
			product.ImageURL = &result.URL
			product.ImagePublicID = &result.PublicID
		}
		if err := db.Create(&product).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to create product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		// Reload with the category relation the way the read endpoints serve it
		_ = db.Preload("Category").First(&product, product.ID).Error
		invalidateCatalogCache(rdb)
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProductHandler applies a partial JSON update to a product
func UpdateProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		raw, ok := bindRawJSON(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
			return
		}
		in, fieldErrs := validation.ValidateProduct(raw, true)
		if fieldErrs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrs})
			return
		}
		var product domain.Product // Existence check for a clean 404
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		applyProductInput(&product, in)
		if err := db.Save(&product).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"product_id": id,
				"error":      err.Error(),
			}).Error("Failed to update product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		_ = db.Preload("Category").First(&product, product.ID).Error
		invalidateCatalogCache(rdb)
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProductHandler removes a product. The image blob is deleted from
// the media host best-effort: a failure there is logged and the record is
// removed regardless.
func DeleteProductHandler(db *gorm.DB, rdb *redis.Client, m media.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		var product domain.Product // Existence check for a clean 404
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		// Best-effort blob cleanup; an orphaned blob beats a failed delete
		if product.ImagePublicID != nil && *product.ImagePublicID != "" {
			if err := m.Destroy(c.Request.Context(), *product.ImagePublicID); err != nil {
				logrus.WithFields(logrus.Fields{
					"product_id": id,
					"public_id":  *product.ImagePublicID,
					"error":      err.Error(),
				}).Warn("Failed to delete product image from media host")
			}
		}
		if err := db.Delete(&product).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"product_id": id,
				"error":      err.Error(),
			}).Error("Failed to delete product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		invalidateCatalogCache(rdb)
		c.Status(http.StatusNoContent)
	}
}

// productPayload extracts the raw fields of a create request from either a
// JSON body or a multipart form, and reports whether the request carried an
// "image" file. Writes the 400 itself when the body is unreadable.
func productPayload(c *gin.Context) (raw map[string]any, hasImage, ok bool) {
	if c.ContentType() != "multipart/form-data" {
		raw, ok := bindRawJSON(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
			return nil, false, false
		}
		return raw, false, true
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return nil, false, false
	}
	raw = make(map[string]any, len(form.Value))
	for key, vals := range form.Value {
		if len(vals) == 0 {
			continue
		}
		if key == "sizes" {
			raw[key] = vals // Repeated sizes fields form the array
		} else {
			raw[key] = vals[0]
		}
	}
	return raw, len(form.File["image"]) > 0, true
}

// uploadFormImage streams the uploaded "image" file to the media host
func uploadFormImage(c *gin.Context, m media.Service) (*media.UploadResult, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return m.Upload(c.Request.Context(), f, media.ProductFolder)
}

// applyProductInput copies every set field of the validated input onto the
// model; unset fields keep their current values
func applyProductInput(p *domain.Product, in *validation.ProductInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Gender != nil {
		p.Gender = in.Gender
	}
	if in.ImageURL != nil {
		p.ImageURL = in.ImageURL
	}
	if in.ImagePublicID != nil {
		p.ImagePublicID = in.ImagePublicID
	}
	if in.Brand != nil {
		p.Brand = in.Brand
	}
	if in.CategoryID != nil {
		p.CategoryID = in.CategoryID
	}
	if in.Sizes != nil {
		p.Sizes = in.Sizes
	}
	if in.IsOnSale != nil {
		p.IsOnSale = *in.IsOnSale
	}
	if in.SalePrice != nil {
		p.SalePrice = in.SalePrice
	}
}
