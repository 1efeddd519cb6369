package middleware

import (
	"net/http"
	"net/http/httptest"
	"price-compare/pkg/logger"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	base := logger.NewNop()
	e := echo.New()
	e.Use(NewRequestIDMiddleware(base))

	var scoped *logger.Logger
	e.GET("/ping", func(c echo.Context) error {
		scoped = base.FromContext(c.Request().Context())
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
	assert.NoError(t, err)
	require.NotNil(t, scoped)
	assert.NotSame(t, base, scoped)
}
