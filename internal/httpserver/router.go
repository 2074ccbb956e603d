package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	authmw "github.com/LeducSama/congo-marketplace-backend/internal/middleware/auth"
)

// Deps bundles everything the router needs. Search is optional; when nil the
// /api/search route is not registered.
type Deps struct {
	Auth     *AuthHTTP
	Catalog  *CatalogHTTP
	Cart     *CartHTTP
	Wishlist *WishlistHTTP
	Vendor   *VendorHTTP
	Story    *StoryHTTP
	Search   *SearchHTTP
	AuthMW   *authmw.AuthMiddleware
}

func Register(e *echo.Echo, d Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/refresh", d.Auth.Refresh)
	auth.POST("/logout", d.Auth.Logout)
	auth.GET("/me", d.Auth.Me, d.AuthMW.RequireAuth)

	api.GET("/products", d.Catalog.GetProducts)
	api.GET("/products/categories/all", d.Catalog.GetCategories)
	api.GET("/products/:id", d.Catalog.GetProduct)

	if d.Search != nil {
		api.GET("/search", d.Search.Search)
	}

	cart := api.Group("/cart", d.AuthMW.RequireAuth)
	cart.GET("", d.Cart.GetCart)
	cart.GET("/total", d.Cart.GetTotal)
	cart.POST("/add", d.Cart.AddToCart)
	cart.PUT("/:id", d.Cart.UpdateQuantity)
	cart.DELETE("/:id", d.Cart.RemoveItem)
	cart.DELETE("", d.Cart.ClearCart)

	wishlist := api.Group("/wishlist", d.AuthMW.RequireAuth)
	wishlist.GET("", d.Wishlist.GetWishlist)
	wishlist.POST("/toggle", d.Wishlist.Toggle)

	vendors := api.Group("/vendors")
	vendors.GET("", d.Vendor.GetVendors)
	vendors.GET("/following", d.Vendor.GetFollowing, d.AuthMW.RequireAuth)
	vendors.GET("/following/products", d.Vendor.GetFollowingProducts, d.AuthMW.RequireAuth)
	vendors.POST("/:id/follow", d.Vendor.ToggleFollow, d.AuthMW.RequireAuth)

	stories := api.Group("/stories")
	stories.POST("", d.Story.CreateStory, d.AuthMW.RequireAuth)
	stories.GET("/feed", d.Story.GetFeed, d.AuthMW.RequireAuth)
	stories.POST("/:id/view", d.Story.RecordView)
}
