package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/LeducSama/congo-marketplace-backend/internal/db"
	"github.com/LeducSama/congo-marketplace-backend/internal/models"
	"github.com/LeducSama/congo-marketplace-backend/internal/repo"
)

func newTestStore(t *testing.T) *repo.GormRepo {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	return repo.New(gdb)
}

func createUser(t *testing.T, store *repo.GormRepo, email, role string) *models.User {
	t.Helper()

	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, store.DB.Create(&user).Error)
	return &user
}

func createVendor(t *testing.T, store *repo.GormRepo, name string) *models.Vendor {
	t.Helper()

	user := createUser(t, store, name+"@vendors.test", "vendor")
	vendor := models.Vendor{UserID: user.ID, Name: name}
	require.NoError(t, store.DB.Create(&vendor).Error)
	return &vendor
}

func createProduct(t *testing.T, store *repo.GormRepo, vendorID uint, title string, price float64, active bool) *models.Product {
	t.Helper()

	product := models.Product{
		VendorID: vendorID,
		Title:    title,
		Price:    price,
		Stock:    10,
		IsActive: active,
	}
	require.NoError(t, store.DB.Create(&product).Error)
	return &product
}
