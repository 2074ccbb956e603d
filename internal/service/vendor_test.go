package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeducSama/congo-marketplace-backend/internal/models"
)

func TestVendorService_ToggleFollow_UnknownVendor(t *testing.T) {
	store := newTestStore(t)
	svc := &VendorService{Repo: store}

	user := createUser(t, store, "buyer@vendorsvc.test", "buyer")

	_, _, err := svc.ToggleFollow(context.Background(), user.ID, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVendorService_ToggleFollow_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	svc := &VendorService{Repo: store}
	ctx := context.Background()

	vendor := createVendor(t, store, "toggle-vendor")
	user := createUser(t, store, "buyer@toggle.test", "buyer")

	following, v, err := svc.ToggleFollow(ctx, user.ID, vendor.ID)
	require.NoError(t, err)
	assert.True(t, following)
	assert.Equal(t, 1, v.Followers)

	following, v, err = svc.ToggleFollow(ctx, user.ID, vendor.ID)
	require.NoError(t, err)
	assert.False(t, following)
	assert.Equal(t, 0, v.Followers)
}

func TestVendorService_ListFollowedWithStories(t *testing.T) {
	store := newTestStore(t)
	svc := &VendorService{Repo: store}
	ctx := context.Background()

	withStory := createVendor(t, store, "storied-vendor")
	without := createVendor(t, store, "quiet-vendor")
	user := createUser(t, store, "buyer@stories.test", "buyer")

	_, _, err := svc.ToggleFollow(ctx, user.ID, withStory.ID)
	require.NoError(t, err)
	_, _, err = svc.ToggleFollow(ctx, user.ID, without.ID)
	require.NoError(t, err)

	require.NoError(t, store.DB.Create(&models.VendorStory{
		VendorID:  withStory.ID,
		Content:   "flash sale",
		ExpiresAt: time.Now().Add(time.Hour),
		IsActive:  true,
	}).Error)

	followed, err := svc.ListFollowedWithStories(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, followed, 2)

	byID := make(map[uint]FollowedVendor, len(followed))
	for _, f := range followed {
		byID[f.Vendor.ID] = f
	}

	assert.True(t, byID[withStory.ID].HasNewStory)
	require.Len(t, byID[withStory.ID].Stories, 1)
	assert.Equal(t, "flash sale", byID[withStory.ID].Stories[0].Content)

	assert.False(t, byID[without.ID].HasNewStory)
	assert.Empty(t, byID[without.ID].Stories)
}

func TestVendorService_ListFollowedWithStories_NoFollows(t *testing.T) {
	store := newTestStore(t)
	svc := &VendorService{Repo: store}

	user := createUser(t, store, "buyer@nofollow.test", "buyer")

	followed, err := svc.ListFollowedWithStories(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, followed)
}

func TestVendorService_FollowedProducts_Capped(t *testing.T) {
	store := newTestStore(t)
	svc := &VendorService{Repo: store}
	ctx := context.Background()

	vendor := createVendor(t, store, "many-products-vendor")
	user := createUser(t, store, "buyer@cap.test", "buyer")
	_, _, err := svc.ToggleFollow(ctx, user.ID, vendor.ID)
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		createProduct(t, store, vendor.ID, "Item", float64(i+1), true)
	}

	products, err := svc.FollowedProducts(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, products, 20)
}
