package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/LeducSama/congo-marketplace-backend/internal/models"
)

var ErrEmailTaken = errors.New("email already registered")

// CreateUser inserts the user unless the email is already taken.
func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	tx := r.DB.WithContext(ctx).Where("email = ?", u.Email).FirstOrCreate(u)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrEmailTaken
	}
	return nil
}

func (r *GormRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) CreateVendor(ctx context.Context, v *models.Vendor) error {
	return r.DB.WithContext(ctx).Create(v).Error
}

func (r *GormRepo) VendorByUserID(ctx context.Context, userID uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *GormRepo) SaveRefreshToken(ctx context.Context, tokenHash string, userID uint, expiresAt time.Time) error {
	return r.DB.WithContext(ctx).Create(&models.RefreshToken{
		Token:     tokenHash,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}).Error
}

// RefreshTokenValid reports whether the stored token exists, is unrevoked and
// has not expired.
func (r *GormRepo) RefreshTokenValid(ctx context.Context, tokenHash string, now time.Time) (bool, error) {
	var rt models.RefreshToken
	err := r.DB.WithContext(ctx).Where("token = ?", tokenHash).First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !rt.Revoked && rt.ExpiresAt.After(now), nil
}

func (r *GormRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	return r.DB.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token = ?", tokenHash).
		Update("revoked", true).Error
}
