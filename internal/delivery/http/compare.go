package http

import (
	"net/http"
	"price-compare/internal/dto"
	"price-compare/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupCompare(base *echo.Group) {
	base.POST("/compare", h.CompareProducts)
}

func (h *HttpAPIHandler) CompareProducts(c echo.Context) error {
	var req dto.CompareRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	ctx := c.Request().Context()
	h.log.InfoContext(ctx, "Compare request",
		logger.Int64Field("pcode1", req.Pcode1),
		logger.Int64Field("pcode2", req.Pcode2),
	)

	return c.JSON(http.StatusOK, dto.CompareResponse{
		Pcode1:   req.Pcode1,
		Pcode2:   req.Pcode2,
		Analysis: h.service.ComparisonService.CompareProducts(ctx, req.Pcode1, req.Pcode2),
	})
}
