package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleWishlist_AddsThenRemoves(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	vendor := seedVendor(t, r, "wish-vendor")
	product := seedProduct(t, r, vendor.ID, "Bamboo Cutting Board Set", 34.99)
	user := seedUser(t, r, "buyer@wish.test")

	added, err := r.ToggleWishlist(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, added)

	in, err := r.InWishlist(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, in)

	added, err = r.ToggleWishlist(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, added)

	in, err = r.InWishlist(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, in)
}

func TestToggleWishlist_IndependentPerUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	vendor := seedVendor(t, r, "wish-vendor-2")
	product := seedProduct(t, r, vendor.ID, "Organic Herb Garden Kit", 24.99)
	alice := seedUser(t, r, "alice@wish.test")
	bob := seedUser(t, r, "bob@wish.test")

	_, err := r.ToggleWishlist(ctx, alice.ID, product.ID)
	require.NoError(t, err)
	_, err = r.ToggleWishlist(ctx, bob.ID, product.ID)
	require.NoError(t, err)

	_, err = r.ToggleWishlist(ctx, alice.ID, product.ID)
	require.NoError(t, err)

	in, err := r.InWishlist(ctx, bob.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, in)

	items, err := r.GetWishlist(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
	assert.Equal(t, product.Title, items[0].Product.Title)
}
