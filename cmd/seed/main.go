package main

import (
	"flag"    // Command-line flags
	"strings" // Splitting the admin credential pair

	"catalog_system/internal/config" // Custom package for configuration
	"catalog_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Seed categories for the sneaker catalog
var categories = []domain.Category{
	{Name: "running", Description: ptr("Road and trail running shoes")},
	{Name: "training", Description: ptr("Gym and functional training shoes")},
	{Name: "basketball", Description: ptr("Basketball shoes")},
	{Name: "futbol", Description: ptr("Football boots and turf shoes")},
	{Name: "tenis", Description: ptr("Tennis and padel shoes")},
	{Name: "lifestyle", Description: ptr("Casual and street shoes")},
	{Name: "outdoor", Description: ptr("Trail running and hiking shoes")},
}

// Sample products, keyed to a category by name
var products = []struct {
	domain.Product
	category string
}{
	{domain.Product{Name: "Nike Air Zoom Pegasus 41", Description: ptr("Versatile daily trainer with responsive cushioning"), Price: 89990, Stock: 25, Brand: ptr("Nike")}, "running"},
	{domain.Product{Name: "Adidas Ultraboost Light", Description: ptr("Maximum Boost cushioning for long runs"), Price: 129990, Stock: 15, Brand: ptr("Adidas")}, "running"},
	{domain.Product{Name: "Nike Metcon 9", Description: ptr("The definitive shoe for CrossFit and HIIT"), Price: 84990, Stock: 30, Brand: ptr("Nike")}, "training"},
	{domain.Product{Name: "Jordan XXXVIII", Description: ptr("Premium cushioning and ankle support"), Price: 159990, Stock: 10, Brand: ptr("Jordan")}, "basketball"},
	{domain.Product{Name: "Nike Mercurial Superfly 9", Description: ptr("Top-end speed with Flyknit and a carbon plate"), Price: 179990, Stock: 20, Brand: ptr("Nike")}, "futbol"},
	{domain.Product{Name: "Asics Gel-Resolution 9", Description: ptr("Lateral support and GEL cushioning"), Price: 89990, Stock: 22, Brand: ptr("Asics")}, "tenis"},
	{domain.Product{Name: "Nike Air Force 1 '07", Description: ptr("The icon that never goes out of style"), Price: 74990, Stock: 40, Brand: ptr("Nike")}, "lifestyle"},
	{domain.Product{Name: "Salomon Speedcross 6", Description: ptr("Extreme grip for technical trails"), Price: 99990, Stock: 15, Brand: ptr("Salomon")}, "outdoor"},
}

// Main entry point for the one-off data loader
func main() {
	adminCred := flag.String("admin", "", "create or update the admin as user:pass")
	flag.Parse()

	cfg := config.LoadConfig() // Load configuration
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	// Upsert categories by name
	categoryIDs := make(map[string]uint, len(categories))
	for _, c := range categories {
		var existing domain.Category
		if err := db.Where("name = ?", c.Name).FirstOrCreate(&existing, c).Error; err != nil {
			logrus.Fatalf("failed to seed category %s: %v", c.Name, err)
		}
		categoryIDs[existing.Name] = existing.ID
	}
	logrus.Infof("Seeded %d categories", len(categories))

	// Upsert products by name + brand
	for _, p := range products {
		if id, ok := categoryIDs[p.category]; ok {
			p.Product.CategoryID = &id
		}
		var existing domain.Product
		if err := db.Where("name = ? AND brand = ?", p.Product.Name, p.Product.Brand).
			FirstOrCreate(&existing, p.Product).Error; err != nil {
			logrus.Fatalf("failed to seed product %s: %v", p.Product.Name, err)
		}
	}
	logrus.Infof("Seeded %d products", len(products))

	// Optionally create or reset the admin
	if *adminCred != "" {
		user, pass, found := strings.Cut(*adminCred, ":")
		if !found || user == "" || pass == "" {
			logrus.Fatal("-admin must be user:pass")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			logrus.Fatalf("failed to hash admin password: %v", err)
		}
		var admin domain.Admin
		if err := db.Where("username = ?", user).
			Assign(domain.Admin{Username: user, Password: string(hash)}).
			FirstOrCreate(&admin).Error; err != nil {
			logrus.Fatalf("failed to seed admin: %v", err)
		}
		logrus.Infof("Admin %q ready", user)
	}
}

// ptr returns a pointer to its argument, for optional model fields
func ptr[T any](v T) *T {
	return &v
}
