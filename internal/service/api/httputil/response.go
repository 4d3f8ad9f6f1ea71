// Package httputil Echo 핸들러에서 사용하는 HTTP 에러 생성 및 전역 에러 처리 기능을 제공합니다.
package httputil

import (
	"net/http"

	"github.com/darkkaiser/wcib-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

func newHTTPError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다.
func NewBadRequestError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다.
func NewNotFoundError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

// NewRequestEntityTooLargeError 413 Request Entity Too Large 에러를 생성합니다.
func NewRequestEntityTooLargeError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusRequestEntityTooLarge, message)
}

// NewUnsupportedMediaTypeError 415 Unsupported Media Type 에러를 생성합니다.
func NewUnsupportedMediaTypeError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusUnsupportedMediaType, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다.
func NewTooManyRequestsError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다.
func NewInternalServerError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusInternalServerError, message)
}

// NewServiceUnavailableError 503 Service Unavailable 에러를 생성합니다.
func NewServiceUnavailableError(message string) *echo.HTTPError {
	return newHTTPError(http.StatusServiceUnavailable, message)
}
