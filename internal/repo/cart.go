package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/LeducSama/congo-marketplace-backend/internal/models"
)

// GetCart returns every cart row for the user with its product preloaded.
// Filtering of inactive products happens in the service layer; rows are never
// mutated by a read.
func (r *GormRepo) GetCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.DB.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart merges quantity into an existing (user, product) row or inserts a
// fresh one, inside a single transaction. The unique index on the pair keeps
// concurrent inserts from producing duplicates. Reports whether a new row was
// created.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) (bool, error) {
	created := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
				First(item).Error
		}

		created = true
		return tx.Create(item).Error
	})
	return created, err
}

// UpdateQuantity sets the quantity to exactly qty, or deletes the row when
// qty <= 0. Scoped to the owning user: a foreign item id affects zero rows and
// comes back as gorm.ErrRecordNotFound.
func (r *GormRepo) UpdateQuantity(ctx context.Context, userID, itemID uint, qty int) (bool, *models.CartItem, error) {
	if qty <= 0 {
		res := r.DB.WithContext(ctx).
			Where("id = ? AND user_id = ?", itemID, userID).
			Delete(&models.CartItem{})
		if res.Error != nil {
			return false, nil, res.Error
		}
		if res.RowsAffected == 0 {
			return false, nil, gorm.ErrRecordNotFound
		}
		return true, nil, nil
	}

	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("id = ? AND user_id = ?", itemID, userID).
			Update("quantity", qty)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error
	})
	if err != nil {
		return false, nil, err
	}
	return false, &item, nil
}

func (r *GormRepo) RemoveItem(ctx context.Context, userID, itemID uint) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) RemoveByProduct(ctx context.Context, userID, productID uint) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
