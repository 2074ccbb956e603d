package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/LeducSama/congo-marketplace-backend/internal/db"
	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	authmw "github.com/LeducSama/congo-marketplace-backend/internal/middleware/auth"
	loggingmw "github.com/LeducSama/congo-marketplace-backend/internal/middleware/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/models"
	"github.com/LeducSama/congo-marketplace-backend/internal/repo"
	"github.com/LeducSama/congo-marketplace-backend/internal/service"
	"github.com/LeducSama/congo-marketplace-backend/internal/transport"
)

type testEnv struct {
	e     *echo.Echo
	store *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	store := repo.New(gdb)
	secret := []byte("test-jwt-secret")

	authSvc := &service.AuthService{
		Repo:          store,
		JWTSecret:     secret,
		RefreshSecret: []byte("test-refresh-secret"),
	}

	deps := Deps{
		Auth:     &AuthHTTP{Svc: authSvc},
		Catalog:  &CatalogHTTP{Svc: &service.CatalogService{Repo: store}},
		Cart:     &CartHTTP{Svc: &service.CartService{Repo: store}},
		Wishlist: &WishlistHTTP{Svc: &service.WishlistService{Repo: store}},
		Vendor:   &VendorHTTP{Svc: &service.VendorService{Repo: store}},
		Story:    &StoryHTTP{Svc: &service.StoryService{Repo: store}},
		AuthMW:   authmw.New(secret),
	}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(loggingmw.RequestLogger(logging.New("error")))
	Register(e, deps)

	return &testEnv{e: e, store: store}
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, env *testEnv, email, role string) (token string, userID uint) {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "Secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken, resp.User.ID
}

func seedCatalog(t *testing.T, env *testEnv) (*models.Vendor, *models.Product) {
	t.Helper()

	user := models.User{Name: "Shop Owner", Email: "owner@shop.test", PasswordHash: "x", Role: "vendor", IsActive: true}
	require.NoError(t, env.store.DB.Create(&user).Error)

	vendor := models.Vendor{UserID: user.ID, Name: "Test Shop"}
	require.NoError(t, env.store.DB.Create(&vendor).Error)

	product := models.Product{
		VendorID: vendor.ID,
		Title:    "Wireless Earbuds Pro",
		Price:    149.99,
		Stock:    45,
		IsActive: true,
	}
	require.NoError(t, env.store.DB.Create(&product).Error)
	return &vendor, &product
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp["status"])
}

func TestAuthFlow(t *testing.T) {
	env := newTestEnv(t)

	token, _ := registerUser(t, env, "flow@auth.test", "buyer")

	rec := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "flow@auth.test", me.User.Email)

	rec = env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Dup", "email": "flow@auth.test", "password": "Secret123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartFlow(t *testing.T) {
	env := newTestEnv(t)
	_, product := seedCatalog(t, env)
	token, _ := registerUser(t, env, "buyer@cartflow.test", "buyer")

	rec := env.do(t, http.MethodPost, "/api/cart/add", token, map[string]any{
		"productId": product.ID, "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// same product merges instead of duplicating
	rec = env.do(t, http.MethodPost, "/api/cart/add", token, map[string]any{
		"productId": product.ID, "quantity": 3,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []transport.CartItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, uint(5), items[0].Quantity)
	assert.Equal(t, product.Title, items[0].Product.Title)

	rec = env.do(t, http.MethodGet, "/api/cart/total", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var total service.CartTotal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &total))
	assert.Equal(t, 5, total.ItemCount)
	assert.InDelta(t, 749.95, total.Subtotal, 0.001)

	rec = env.do(t, http.MethodPut, fmt.Sprintf("/api/cart/%d", items[0].ID), token, map[string]int{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Empty(t, items)
}

func TestCartRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/cart/add", "garbage-token", map[string]any{"productId": 1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWishlistToggle(t *testing.T) {
	env := newTestEnv(t)
	_, product := seedCatalog(t, env)
	token, _ := registerUser(t, env, "buyer@wishflow.test", "buyer")

	rec := env.do(t, http.MethodPost, "/api/wishlist/toggle", token, map[string]any{"productId": product.ID})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["inWishlist"])

	rec = env.do(t, http.MethodGet, "/api/wishlist", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []transport.WishlistItemResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ID)

	rec = env.do(t, http.MethodPost, "/api/wishlist/toggle", token, map[string]any{"productId": product.ID})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["inWishlist"])
}

func TestFollowAndStories(t *testing.T) {
	env := newTestEnv(t)
	vendor, _ := seedCatalog(t, env)

	buyerToken, _ := registerUser(t, env, "buyer@followflow.test", "buyer")
	vendorToken, _ := registerUser(t, env, "vendor@followflow.test", "vendor")

	// buyers cannot post stories
	rec := env.do(t, http.MethodPost, "/api/stories", buyerToken, map[string]string{"content": "nope"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/stories", vendorToken, map[string]string{"content": "new drop tomorrow"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/vendors/%d/follow", vendor.ID), buyerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var followResp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &followResp))
	assert.Equal(t, true, followResp["following"])

	rec = env.do(t, http.MethodGet, "/api/vendors/following", buyerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var followed []transport.FollowedVendorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &followed))
	require.Len(t, followed, 1)
	assert.Equal(t, vendor.ID, followed[0].ID)
	assert.False(t, followed[0].HasNewStory)

	rec = env.do(t, http.MethodGet, "/api/stories/feed", buyerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var feed []transport.FeedStoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, "new drop tomorrow", feed[0].Content)

	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/stories/%d/view", feed[0].ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var story models.VendorStory
	require.NoError(t, env.store.DB.First(&story, feed[0].ID).Error)
	assert.Equal(t, 1, story.Views)
}

func TestProductEndpoints(t *testing.T) {
	env := newTestEnv(t)
	_, product := seedCatalog(t, env)

	rec := env.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []transport.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, product.Title, products[0].Title)
	assert.Equal(t, "Uncategorized", products[0].Category)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/products/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
