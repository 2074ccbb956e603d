package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/LeducSama/congo-marketplace-backend/internal/models"
)

// ToggleFollow flips the follow state for (user, vendor) and applies the
// compensating followers counter update in the same transaction, so the row
// and the denormalized counter can never drift apart.
func (r *GormRepo) ToggleFollow(ctx context.Context, userID, vendorID uint) (bool, *models.Vendor, error) {
	following := false
	var vendor models.Vendor

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&vendor, vendorID).Error; err != nil {
			return err
		}

		res := tx.Where("user_id = ? AND vendor_id = ?", userID, vendorID).
			Delete(&models.VendorFollower{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			if err := tx.Model(&models.Vendor{}).
				Where("id = ? AND followers > 0", vendorID).
				Update("followers", gorm.Expr("followers - 1")).Error; err != nil {
				return err
			}
		} else {
			following = true
			if err := tx.Create(&models.VendorFollower{UserID: userID, VendorID: vendorID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Vendor{}).
				Where("id = ?", vendorID).
				Update("followers", gorm.Expr("followers + 1")).Error; err != nil {
				return err
			}
		}

		return tx.First(&vendor, vendorID).Error
	})
	if err != nil {
		return false, nil, err
	}
	return following, &vendor, nil
}

func (r *GormRepo) GetFollowedVendors(ctx context.Context, userID uint) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.DB.WithContext(ctx).
		Preload("User").
		Where("id IN (?)", r.DB.Model(&models.VendorFollower{}).
			Select("vendor_id").
			Where("user_id = ?", userID)).
		Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

// GetLiveStoriesForVendors returns every active, unexpired story belonging to
// the given vendors, newest first.
func (r *GormRepo) GetLiveStoriesForVendors(ctx context.Context, vendorIDs []uint, now time.Time) ([]models.VendorStory, error) {
	if len(vendorIDs) == 0 {
		return nil, nil
	}
	var stories []models.VendorStory
	err := r.DB.WithContext(ctx).
		Where("vendor_id IN ? AND is_active = ? AND expires_at > ?", vendorIDs, true, now).
		Order("created_at DESC").
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}

// GetFollowedProducts lists active products of vendors the user follows,
// newest first, capped at limit.
func (r *GormRepo) GetFollowedProducts(ctx context.Context, userID uint, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.WithContext(ctx).
		Preload("Vendor").
		Preload("Vendor.User").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("is_active = ?", true).
		Where("vendor_id IN (?)", r.DB.Model(&models.VendorFollower{}).
			Select("vendor_id").
			Where("user_id = ?", userID)).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
