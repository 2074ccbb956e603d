package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/models"
	"github.com/LeducSama/congo-marketplace-backend/internal/mykafka"
	"github.com/LeducSama/congo-marketplace-backend/internal/repo"
)

const followedProductsLimit = 20

type VendorService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

// FollowedVendor is a followed vendor annotated with its live story state.
type FollowedVendor struct {
	Vendor      models.Vendor
	HasNewStory bool
	Stories     []models.VendorStory
}

func (s *VendorService) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	return s.Repo.ListVendors(ctx)
}

// ToggleFollow flips the follow state and keeps the denormalized followers
// counter in step; both writes share one transaction.
func (s *VendorService) ToggleFollow(ctx context.Context, userID, vendorID uint) (bool, *models.Vendor, error) {
	following, vendor, err := s.Repo.ToggleFollow(ctx, userID, vendorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil, fmt.Errorf("vendor not found: %w", ErrNotFound)
	}
	if err != nil {
		return false, nil, err
	}

	eventType := "vendor_unfollowed"
	if following {
		eventType = "vendor_followed"
	}
	s.publish(ctx, vendorID, map[string]any{
		"type":      eventType,
		"user_id":   userID,
		"vendor_id": vendorID,
		"followers": vendor.Followers,
	})

	return following, vendor, nil
}

// ListFollowedWithStories annotates each followed vendor with hasNewStory
// (any active, unexpired story) and the stories created within the last 24h.
func (s *VendorService) ListFollowedWithStories(ctx context.Context, userID uint) ([]FollowedVendor, error) {
	vendors, err := s.Repo.GetFollowedVendors(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return []FollowedVendor{}, nil
	}

	ids := make([]uint, len(vendors))
	for i, v := range vendors {
		ids[i] = v.ID
	}

	now := time.Now()
	stories, err := s.Repo.GetLiveStoriesForVendors(ctx, ids, now)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-24 * time.Hour)
	byVendor := make(map[uint][]models.VendorStory)
	hasLive := make(map[uint]bool)
	for _, st := range stories {
		hasLive[st.VendorID] = true
		if st.CreatedAt.After(cutoff) {
			byVendor[st.VendorID] = append(byVendor[st.VendorID], st)
		}
	}

	out := make([]FollowedVendor, len(vendors))
	for i, v := range vendors {
		out[i] = FollowedVendor{
			Vendor:      v,
			HasNewStory: hasLive[v.ID],
			Stories:     byVendor[v.ID],
		}
	}
	return out, nil
}

// FollowedProducts feeds the home page: newest active products from followed
// vendors, shuffled for display.
func (s *VendorService) FollowedProducts(ctx context.Context, userID uint) ([]models.Product, error) {
	products, err := s.Repo.GetFollowedProducts(ctx, userID, followedProductsLimit)
	if err != nil {
		return nil, err
	}
	rand.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
	return products, nil
}

func (s *VendorService) publish(ctx context.Context, vendorID uint, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, mykafka.TopicVendorEvents, fmt.Sprint(vendorID), event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", mykafka.TopicVendorEvents, "error", err)
	}
}
