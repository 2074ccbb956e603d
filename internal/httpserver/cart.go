package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/service"
	"github.com/LeducSama/congo-marketplace-backend/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Svc.GetItems(ctx, uid)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.NewCartList(items))
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	item, created, err := h.Svc.AddToCart(ctx, uid, req.ProductID, req.Quantity)
	if err != nil {
		l.Error("add_to_cart_error", "error", err)
		return respondError(c, err)
	}

	msg := "Cart updated"
	status := http.StatusOK
	if created {
		msg = "Item added to cart"
		status = http.StatusCreated
	}
	l.Info("cart_item_added", "product_id", req.ProductID, "quantity", item.Quantity)
	return c.JSON(status, echo.Map{"message": msg, "item": item})
}

func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid item id")
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	removed, item, err := h.Svc.UpdateQuantity(ctx, uid, uint(itemID), req.Quantity)
	if err != nil {
		l.Warn("update_quantity_error", "item_id", itemID, "error", err)
		return respondError(c, err)
	}

	if removed {
		return c.JSON(http.StatusOK, echo.Map{"message": "Item removed from cart"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Cart item updated", "item": item})
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid item id")
	}

	if err := h.Svc.RemoveItem(ctx, uid, uint(itemID)); err != nil {
		l.Warn("remove_item_error", "item_id", itemID, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Item removed from cart"})
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	if err := h.Svc.Clear(ctx, uid); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Cart cleared"})
}

func (h *CartHTTP) GetTotal(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.total")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	total, err := h.Svc.GetTotal(ctx, uid)
	if err != nil {
		l.Error("cart_total_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, total)
}
