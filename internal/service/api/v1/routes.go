// Package v1 /api/v1 경로의 라우트를 등록합니다.
package v1

import (
	"github.com/darkkaiser/wcib-server/internal/service/api/middleware"
	"github.com/darkkaiser/wcib-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes v1 API 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	v1Group.POST("/wcib", h.RecommendHandler,
		middleware.ValidateContentType(echo.MIMEApplicationJSON),
	)

	v1Group.GET("/products", h.ProductsHandler)
	v1Group.GET("/products/search", h.SearchHandler)
}
