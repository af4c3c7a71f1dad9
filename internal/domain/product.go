package domain

import "time"

// Product Model
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`           // Primary key
	Name          string    `gorm:"not null" json:"name"`           // Product name
	Description   *string   `json:"description"`                    // Optional description
	Price         float64   `gorm:"not null" json:"price"`          // Price, always positive
	Stock         int       `gorm:"not null;default:0" json:"stock"` // Units in stock
	Gender        *string   `json:"gender"`                         // Optional gender segment
	ImageURL      *string   `json:"imageUrl"`                       // Canonical image URL on the media host
	ImagePublicID *string   `json:"imagePublicId"`                  // Media host handle, used to delete the blob
	Brand         *string   `json:"brand"`                          // Optional brand
	CategoryID    *uint     `json:"categoryId"`                     // Optional foreign key to Category
	Category      *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`
	Sizes         []string  `gorm:"serializer:json" json:"sizes"`   // Available sizes, stored as a JSON column
	IsOnSale      bool      `gorm:"default:false" json:"isOnSale"`  // Sale flag
	SalePrice     *float64  `json:"salePrice"`                      // Optional discounted price
	CreatedAt     time.Time `json:"createdAt"`                      // Set by GORM on insert
}
