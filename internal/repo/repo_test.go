package repo

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/LeducSama/congo-marketplace-backend/internal/db"
	"github.com/LeducSama/congo-marketplace-backend/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	return New(gdb)
}

func seedUser(t *testing.T, r *GormRepo, email string) *models.User {
	t.Helper()

	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
		Role:         "buyer",
		IsActive:     true,
	}
	require.NoError(t, r.DB.Create(&user).Error)
	return &user
}

func seedVendor(t *testing.T, r *GormRepo, name string) *models.Vendor {
	t.Helper()

	user := seedUser(t, r, fmt.Sprintf("%s@vendors.test", name))
	vendor := models.Vendor{
		UserID: user.ID,
		Name:   name,
	}
	require.NoError(t, r.DB.Create(&vendor).Error)
	return &vendor
}

func seedProduct(t *testing.T, r *GormRepo, vendorID uint, title string, price float64) *models.Product {
	t.Helper()

	product := models.Product{
		VendorID: vendorID,
		Title:    title,
		Price:    price,
		Stock:    10,
		IsActive: true,
	}
	require.NoError(t, r.DB.Create(&product).Error)
	return &product
}
