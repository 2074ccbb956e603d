package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/models"
	"github.com/LeducSama/congo-marketplace-backend/internal/mykafka"
	"github.com/LeducSama/congo-marketplace-backend/internal/repo"
)

type CartService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

// GetItems lists the user's cart joined with live product data. Rows whose
// product has been deactivated are excluded from the result but left in place;
// the ON DELETE CASCADE constraint covers hard-deleted products.
func (s *CartService) GetItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	items, err := s.Repo.GetCart(ctx, userID)
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

// AddToCart merges qty into the existing row for (user, product) or inserts a
// new one. Reports whether a new row was created.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint, qty int) (*models.CartItem, bool, error) {
	if productID == 0 {
		return nil, false, fmt.Errorf("product_id is required: %w", ErrValidation)
	}
	if qty < 1 {
		qty = 1
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  uint(qty),
	}
	created, err := s.Repo.AddToCart(ctx, &item)
	if err != nil {
		return nil, false, err
	}

	s.publish(ctx, userID, map[string]any{
		"type":       "cart_item_added",
		"user_id":    userID,
		"product_id": productID,
		"quantity":   item.Quantity,
	})

	return &item, created, nil
}

// UpdateQuantity replaces the quantity outright; qty <= 0 removes the row.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uint, qty int) (bool, *models.CartItem, error) {
	removed, item, err := s.Repo.UpdateQuantity(ctx, userID, itemID, qty)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil, fmt.Errorf("cart item not found: %w", ErrNotFound)
	}
	if err != nil {
		return false, nil, err
	}

	event := map[string]any{
		"type":    "cart_quantity_updated",
		"user_id": userID,
		"item_id": itemID,
	}
	if removed {
		event["type"] = "cart_item_removed"
	} else {
		event["quantity"] = item.Quantity
	}
	s.publish(ctx, userID, event)

	return removed, item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if err := s.Repo.RemoveItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("cart item not found: %w", ErrNotFound)
		}
		return err
	}

	s.publish(ctx, userID, map[string]any{
		"type":    "cart_item_removed",
		"user_id": userID,
		"item_id": itemID,
	})
	return nil
}

func (s *CartService) RemoveByProduct(ctx context.Context, userID, productID uint) error {
	return s.Repo.RemoveByProduct(ctx, userID, productID)
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	if err := s.Repo.ClearCart(ctx, userID); err != nil {
		return err
	}
	s.publish(ctx, userID, map[string]any{
		"type":    "cart_cleared",
		"user_id": userID,
	})
	return nil
}

type CartTotal struct {
	Subtotal  float64 `json:"subtotal"`
	ItemCount int     `json:"itemCount"`
}

// GetTotal sums unit price times quantity over active-product rows. Decimal
// arithmetic keeps repeated float sums from drifting.
func (s *CartService) GetTotal(ctx context.Context, userID uint) (*CartTotal, error) {
	items, err := s.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	count := 0
	for _, it := range items {
		line := decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
		count += int(it.Quantity)
	}

	return &CartTotal{
		Subtotal:  subtotal.InexactFloat64(),
		ItemCount: count,
	}, nil
}

func (s *CartService) publish(ctx context.Context, userID uint, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, mykafka.TopicCartEvents, fmt.Sprint(userID), event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", mykafka.TopicCartEvents, "error", err)
	}
}
