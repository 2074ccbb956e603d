package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/service"
	"github.com/LeducSama/congo-marketplace-backend/internal/transport"
)

type WishlistHTTP struct {
	Svc *service.WishlistService
}

func (h *WishlistHTTP) GetWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.get")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Svc.List(ctx, uid)
	if err != nil {
		l.Error("get_wishlist_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.NewWishlistList(items))
}

func (h *WishlistHTTP) Toggle(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.toggle")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		ProductID uint `json:"productId"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	added, err := h.Svc.Toggle(ctx, uid, req.ProductID)
	if err != nil {
		l.Error("wishlist_toggle_error", "product_id", req.ProductID, "error", err)
		return respondError(c, err)
	}

	if added {
		return c.JSON(http.StatusCreated, echo.Map{"message": "Added to wishlist", "inWishlist": true})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Removed from wishlist", "inWishlist": false})
}
