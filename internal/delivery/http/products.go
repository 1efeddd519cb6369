package http

import (
	"bytes"
	"fmt"
	"net/http"
	"price-compare/internal/dto"
	"price-compare/pkg/logger"
	"price-compare/pkg/utils"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *HttpAPIHandler) SetupProducts(base *echo.Group) {
	base.GET("/products", h.ListProducts)
	base.GET("/products/export", h.ExportProducts)
	base.GET("/search", h.SearchProducts)
}

func (h *HttpAPIHandler) ListProducts(c echo.Context) error {
	products, err := h.service.CatalogService.ListProducts(c.Request().Context())
	if err != nil {
		response := dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil)
		return c.JSON(response.Code, response)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *HttpAPIHandler) SearchProducts(c echo.Context) error {
	var req dto.SearchRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	ctx := c.Request().Context()
	h.log.InfoContext(ctx, "Search request", logger.StringField("query", req.Query))

	result, err := h.service.CatalogService.Search(ctx, req.Query)
	if err != nil {
		response := dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil)
		return c.JSON(response.Code, response)
	}
	return c.JSON(http.StatusOK, result)
}

// ExportProducts builds the whole workbook before responding so a failed load still gets a 500.
func (h *HttpAPIHandler) ExportProducts(c echo.Context) error {
	ctx := c.Request().Context()

	var buf bytes.Buffer
	if err := h.service.CatalogService.ExportXLSX(ctx, &buf); err != nil {
		h.log.ErrorContext(ctx, "Failed to export products", logger.ErrorField(err))
		response := dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil)
		return c.JSON(response.Code, response)
	}

	filename := fmt.Sprintf("products_%s.xlsx", utils.TimeNowKST().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
