package service

import (
	"context"
	"fmt"
	"time"

	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/models"
	"github.com/LeducSama/congo-marketplace-backend/internal/mykafka"
	"github.com/LeducSama/congo-marketplace-backend/internal/repo"
)

type WishlistService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

// Toggle is the only mutating entry point: it removes the product when present
// and adds it otherwise. Reports the resulting membership.
func (s *WishlistService) Toggle(ctx context.Context, userID, productID uint) (bool, error) {
	if productID == 0 {
		return false, fmt.Errorf("product_id is required: %w", ErrValidation)
	}

	added, err := s.Repo.ToggleWishlist(ctx, userID, productID)
	if err != nil {
		return false, err
	}

	eventType := "wishlist_item_removed"
	if added {
		eventType = "wishlist_item_added"
	}
	s.publish(ctx, userID, map[string]any{
		"type":       eventType,
		"user_id":    userID,
		"product_id": productID,
	})

	return added, nil
}

// List returns wishlist products, skipping products that have gone inactive.
// Unlike the cart the rows themselves are never touched by a read.
func (s *WishlistService) List(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	items, err := s.Repo.GetWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	live := items[:0]
	for _, it := range items {
		if it.Product.ID != 0 && it.Product.IsActive {
			live = append(live, it)
		}
	}
	return live, nil
}

func (s *WishlistService) IsMember(ctx context.Context, userID, productID uint) (bool, error) {
	return s.Repo.InWishlist(ctx, userID, productID)
}

func (s *WishlistService) publish(ctx context.Context, userID uint, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, mykafka.TopicWishlistEvents, fmt.Sprint(userID), event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", mykafka.TopicWishlistEvents, "error", err)
	}
}
