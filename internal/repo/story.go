package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/LeducSama/congo-marketplace-backend/internal/models"
)

func (r *GormRepo) CreateStory(ctx context.Context, story *models.VendorStory) error {
	return r.DB.WithContext(ctx).Create(story).Error
}

// GetStoryFeed returns active stories that have not expired yet, newest first.
func (r *GormRepo) GetStoryFeed(ctx context.Context, now time.Time, limit int) ([]models.VendorStory, error) {
	var stories []models.VendorStory
	err := r.DB.WithContext(ctx).
		Preload("Vendor").
		Preload("Vendor.User").
		Where("is_active = ? AND expires_at > ?", true, now).
		Order("created_at DESC").
		Limit(limit).
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}

// IncrementStoryViews bumps the view counter. A missing story is a no-op, not
// an error.
func (r *GormRepo) IncrementStoryViews(ctx context.Context, storyID uint) error {
	return r.DB.WithContext(ctx).Model(&models.VendorStory{}).
		Where("id = ?", storyID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
