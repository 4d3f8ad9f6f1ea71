package middleware

import (
	"mime"
	"strings"

	"github.com/darkkaiser/wcib-server/internal/service/api/constants"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ValidateContentType 요청 본문의 Content-Type이 expected 와 다르면 415를 반환하는 미들웨어입니다.
// 본문이 없는 요청은 검사하지 않고 통과시킵니다.
func ValidateContentType(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}

			contentType := req.Header.Get(echo.HeaderContentType)
			if !matchMediaType(contentType, expected) {
				applog.WithComponentAndFields(constants.ComponentMiddlewareContentType, applog.Fields{
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"method":     req.Method,
					"path":       req.URL.Path,
					"expected":   expected,
					"actual":     contentType,
					"remote_ip":  c.RealIP(),
				}).Warn("지원하지 않는 Content-Type 요청 차단")

				return ErrUnsupportedMediaType
			}

			return next(c)
		}
	}
}

// matchMediaType "application/json; charset=utf-8" 처럼 파라미터가 붙은 값도 허용합니다.
func matchMediaType(contentType, expected string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return strings.EqualFold(mediaType, expected)
}
