package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/repo"
	"github.com/LeducSama/congo-marketplace-backend/internal/service"
	"github.com/LeducSama/congo-marketplace-backend/internal/transport"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products.list")

	filter := repo.ProductFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Trending: c.QueryParam("trending") == "true",
		Limit:    parseIntDefault(c.QueryParam("limit"), 0),
	}

	products, err := h.Svc.ListProducts(ctx, filter)
	if err != nil {
		l.Error("list_products_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.NewProductList(products))
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products.get")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid product id")
	}

	product, err := h.Svc.GetProduct(ctx, uint(id))
	if err != nil {
		l.Warn("get_product_error", "product_id", id, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.NewProductResponse(product))
}

func (h *CatalogHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "categories.list")

	categories, err := h.Svc.ListCategories(ctx)
	if err != nil {
		l.Error("list_categories_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}
