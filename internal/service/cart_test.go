package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddToCart_Validation(t *testing.T) {
	svc := &CartService{Repo: newTestStore(t)}

	_, _, err := svc.AddToCart(context.Background(), 1, 0, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCartService_AddToCart_DefaultsQuantityToOne(t *testing.T) {
	store := newTestStore(t)
	svc := &CartService{Repo: store}
	ctx := context.Background()

	vendor := createVendor(t, store, "cart-svc-vendor")
	product := createProduct(t, store, vendor.ID, "Wireless Earbuds Pro", 149.99, true)
	user := createUser(t, store, "buyer@cartsvc.test", "buyer")

	item, created, err := svc.AddToCart(ctx, user.ID, product.ID, 0)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint(1), item.Quantity)
}

func TestCartService_GetItems_SkipsInactiveProducts(t *testing.T) {
	store := newTestStore(t)
	svc := &CartService{Repo: store}
	ctx := context.Background()

	vendor := createVendor(t, store, "inactive-vendor")
	live := createProduct(t, store, vendor.ID, "Live", 10, true)
	dead := createProduct(t, store, vendor.ID, "Dead", 20, true)
	user := createUser(t, store, "buyer@inactive.test", "buyer")

	_, _, err := svc.AddToCart(ctx, user.ID, live.ID, 1)
	require.NoError(t, err)
	_, _, err = svc.AddToCart(ctx, user.ID, dead.ID, 1)
	require.NoError(t, err)

	require.NoError(t, store.DB.Model(dead).Update("is_active", false).Error)

	items, err := svc.GetItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, live.ID, items[0].ProductID)

	// the row itself survives the read
	var count int64
	require.NoError(t, store.DB.Table("cart_items").Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestCartService_GetTotal(t *testing.T) {
	store := newTestStore(t)
	svc := &CartService{Repo: store}
	ctx := context.Background()

	vendor := createVendor(t, store, "total-vendor")
	earbuds := createProduct(t, store, vendor.ID, "Wireless Earbuds Pro", 149.99, true)
	pad := createProduct(t, store, vendor.ID, "Wireless Charging Pad", 39.99, true)
	user := createUser(t, store, "buyer@total.test", "buyer")

	_, _, err := svc.AddToCart(ctx, user.ID, earbuds.ID, 2)
	require.NoError(t, err)
	_, _, err = svc.AddToCart(ctx, user.ID, pad.ID, 3)
	require.NoError(t, err)

	total, err := svc.GetTotal(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, total.ItemCount)
	assert.InDelta(t, 419.95, total.Subtotal, 0.001)
}

func TestCartService_GetTotal_EmptyCart(t *testing.T) {
	store := newTestStore(t)
	svc := &CartService{Repo: store}

	user := createUser(t, store, "buyer@empty.test", "buyer")

	total, err := svc.GetTotal(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, total.ItemCount)
	assert.Zero(t, total.Subtotal)
}

func TestCartService_UpdateQuantity_NotFound(t *testing.T) {
	store := newTestStore(t)
	svc := &CartService{Repo: store}

	user := createUser(t, store, "buyer@nf.test", "buyer")

	_, _, err := svc.UpdateQuantity(context.Background(), user.ID, 9999, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
