package main

import (
	"context"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/LeducSama/congo-marketplace-backend/internal/config"
	"github.com/LeducSama/congo-marketplace-backend/internal/db"
	"github.com/LeducSama/congo-marketplace-backend/internal/hash"
	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/models"
)

const seedPassword = "password123"

type seedProduct struct {
	Title         string
	Description   string
	Price         float64
	OriginalPrice float64
	Category      string
	Vendor        string
	Stock         int
	Rating        float64
	ReviewCount   int
	Trending      bool
	ImageURL      string
	Tags          []string
}

type seedVendor struct {
	Name        string
	Email       string
	Description string
	Rating      float64
	TotalSales  int
	Followers   int
}

var seedCategories = []string{
	"Electronics", "Fashion", "Home & Garden", "Sports", "Books", "Beauty",
}

var seedVendors = []seedVendor{
	{"TechCorp Electronics", "vendor1@techcorp.com", "Premium electronics and gadgets", 4.8, 15420, 2340},
	{"Fashion Forward", "vendor2@fashion.com", "Trendy clothing and accessories", 4.6, 8900, 1890},
	{"Green Living", "vendor3@green.com", "Eco-friendly home and garden products", 4.9, 12100, 3100},
}

var seedProducts = []seedProduct{
	{"Wireless Earbuds Pro", "Premium noise-cancelling wireless earbuds with 24h battery life", 149.99, 199.99, "Electronics", "TechCorp Electronics", 45, 4.7, 234, true,
		"https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=400", []string{"wireless", "audio", "premium"}},
	{"Gaming Mechanical Keyboard", "RGB backlit mechanical keyboard for gaming enthusiasts", 129.99, 159.99, "Electronics", "TechCorp Electronics", 67, 4.9, 312, true,
		"https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg?auto=compress&cs=tinysrgb&w=400", []string{"gaming", "mechanical", "rgb"}},
	{"Wireless Charging Pad", "Fast wireless charging for all compatible devices", 39.99, 49.99, "Electronics", "TechCorp Electronics", 156, 4.5, 89, false,
		"https://images.pexels.com/photos/4062289/pexels-photo-4062289.jpeg?auto=compress&cs=tinysrgb&w=400", []string{"wireless", "charging", "fast"}},
	{"Vintage Denim Jacket", "Classic denim jacket with modern fit and premium quality", 89.99, 0, "Fashion", "Fashion Forward", 12, 4.5, 156, true,
		"https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=400", []string{"denim", "vintage", "casual"}},
	{"Silk Scarf Collection", "Luxury silk scarves with unique patterns and premium quality", 45.99, 0, "Fashion", "Fashion Forward", 23, 4.6, 78, false,
		"https://images.pexels.com/photos/1040424/pexels-photo-1040424.jpeg?auto=compress&cs=tinysrgb&w=400", []string{"silk", "luxury", "accessories"}},
	{"Designer Sunglasses", "UV protection with stylish frame design", 119.99, 149.99, "Fashion", "Fashion Forward", 78, 4.6, 134, false,
		"https://images.pexels.com/photos/701877/pexels-photo-701877.jpeg?auto=compress&cs=tinysrgb&w=400", []string{"sunglasses", "designer", "uv-protection"}},
	{"Smart Plant Monitor", "IoT device to monitor your plants health and watering needs", 59.99, 0, "Home & Garden", "Green Living", 28, 4.8, 89, false,
		"https://images.pexels.com/photos/1400375/pexels-photo-1400375.jpeg?auto=compress&cs=tinysrgb&w=400", []string{"smart", "plants", "iot"}},
	{"Bamboo Cutting Board Set", "Sustainable bamboo cutting boards in various sizes", 34.99, 0, "Home & Garden", "Green Living", 89, 4.7, 145, true,
		"https://images.pexels.com/photos/1346347/pexels-photo-1346347.jpeg?auto=compress&cs=tinysrgb&w=400", []string{"bamboo", "sustainable", "kitchen"}},
	{"Organic Herb Garden Kit", "Complete kit to grow herbs at home", 24.99, 0, "Home & Garden", "Green Living", 45, 4.9, 67, true,
		"https://images.pexels.com/photos/1415823/pexels-photo-1415823.jpeg?auto=compress&cs=tinysrgb&w=400", []string{"organic", "herbs", "garden"}},
}

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(cfg.LogLevel)
	ctx := context.Background()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}

	if err := Seed(gdb); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seeding completed",
		"categories", len(seedCategories),
		"vendors", len(seedVendors),
		"products", len(seedProducts),
	)
}

// Seed is idempotent: every insert goes through FirstOrCreate keyed on a
// natural unique column, so re-running it leaves existing rows alone.
func Seed(gdb *gorm.DB) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		categories := make(map[string]uint, len(seedCategories))
		for _, name := range seedCategories {
			cat := models.Category{Name: name}
			if err := tx.Where("name = ?", name).FirstOrCreate(&cat).Error; err != nil {
				return err
			}
			categories[name] = cat.ID
		}

		pwHash, err := hash.HashPassword(seedPassword)
		if err != nil {
			return err
		}

		vendors := make(map[string]uint, len(seedVendors))
		for _, sv := range seedVendors {
			user := models.User{
				Name:         sv.Name,
				Email:        sv.Email,
				PasswordHash: pwHash,
				Role:         "vendor",
				Verified:     true,
				IsActive:     true,
			}
			if err := tx.Where("email = ?", sv.Email).FirstOrCreate(&user).Error; err != nil {
				return err
			}

			vendor := models.Vendor{
				UserID:      user.ID,
				Name:        sv.Name,
				Description: sv.Description,
				Rating:      sv.Rating,
				TotalSales:  sv.TotalSales,
				Followers:   sv.Followers,
			}
			if err := tx.Where("user_id = ?", user.ID).FirstOrCreate(&vendor).Error; err != nil {
				return err
			}
			vendors[sv.Name] = vendor.ID
		}

		for _, sp := range seedProducts {
			product := models.Product{
				VendorID:    vendors[sp.Vendor],
				CategoryID:  categories[sp.Category],
				Title:       sp.Title,
				Description: sp.Description,
				Price:       sp.Price,
				Stock:       sp.Stock,
				Rating:      sp.Rating,
				ReviewCount: sp.ReviewCount,
				IsTrending:  sp.Trending,
				IsActive:    true,
			}
			if sp.OriginalPrice > 0 {
				op := sp.OriginalPrice
				product.OriginalPrice = &op
			}
			if err := tx.Where("title = ?", sp.Title).FirstOrCreate(&product).Error; err != nil {
				return err
			}

			img := models.ProductImage{ProductID: product.ID, ImageURL: sp.ImageURL, SortOrder: 0}
			if err := tx.Where("product_id = ?", product.ID).FirstOrCreate(&img).Error; err != nil {
				return err
			}

			for _, t := range sp.Tags {
				tag := models.ProductTag{ProductID: product.ID, Tag: t}
				if err := tx.Where("product_id = ? AND tag = ?", product.ID, t).FirstOrCreate(&tag).Error; err != nil {
					return err
				}
			}
		}

		for _, sv := range seedVendors {
			story := models.VendorStory{
				VendorID:  vendors[sv.Name],
				Content:   "Welcome to " + sv.Name + "! Check out our latest arrivals.",
				ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
				IsActive:  true,
			}
			if err := tx.Where("vendor_id = ?", story.VendorID).FirstOrCreate(&story).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
