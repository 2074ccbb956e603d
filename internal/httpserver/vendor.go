package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/service"
	"github.com/LeducSama/congo-marketplace-backend/internal/transport"
)

type VendorHTTP struct {
	Svc *service.VendorService
}

func (h *VendorHTTP) GetVendors(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vendors.list")

	vendors, err := h.Svc.ListVendors(ctx)
	if err != nil {
		l.Error("list_vendors_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.NewVendorList(vendors))
}

func (h *VendorHTTP) ToggleFollow(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vendors.follow")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	vendorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid vendor id")
	}

	following, _, err := h.Svc.ToggleFollow(ctx, uid, uint(vendorID))
	if err != nil {
		l.Warn("follow_toggle_error", "vendor_id", vendorID, "error", err)
		return respondError(c, err)
	}

	msg := "Vendor unfollowed"
	if following {
		msg = "Vendor followed"
	}
	return c.JSON(http.StatusOK, echo.Map{"message": msg, "following": following})
}

func (h *VendorHTTP) GetFollowing(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vendors.following")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	followed, err := h.Svc.ListFollowedWithStories(ctx, uid)
	if err != nil {
		l.Error("following_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.NewFollowedVendorList(followed))
}

func (h *VendorHTTP) GetFollowingProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vendors.following_products")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	products, err := h.Svc.FollowedProducts(ctx, uid)
	if err != nil {
		l.Error("following_products_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.NewProductList(products))
}
