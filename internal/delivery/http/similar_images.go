package http

import (
	"net/http"
	"price-compare/internal/dto"
	"price-compare/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSimilarImages(base *echo.Group) {
	base.GET("/similar-images", h.SearchSimilarImages)
}

func (h *HttpAPIHandler) SearchSimilarImages(c echo.Context) error {
	var req dto.SimilarImagesRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	ctx := c.Request().Context()
	h.log.InfoContext(ctx, "Similar images request",
		logger.StringField("pcode", req.Pcode),
		logger.IntField("top", req.Top),
	)

	return c.JSON(http.StatusOK, h.service.SimilarityService.FindSimilarImages(ctx, req.Pcode, req.Top))
}
