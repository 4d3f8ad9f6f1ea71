package httputil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/darkkaiser/wcib-server/internal/service/api/constants"
	"github.com/darkkaiser/wcib-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo의 전역 HTTP 에러 핸들러입니다.
//
// 모든 에러를 ErrorResponse 형식으로 통일하여 응답하고, 5xx는 Error, 4xx는 Warn 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case response.ErrorResponse:
			message = m.Message
		case string:
			message = defaultMessage(code, m)
		default:
			message = defaultMessage(code, fmt.Sprintf("%v", m))
		}
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}
	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error("HTTP 요청 처리 중 서버 오류 발생")
	} else {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn("HTTP 요청 처리 중 클라이언트 오류 발생")
	}

	if c.Response().Committed {
		return
	}

	var respErr error
	if c.Request().Method == http.MethodHead {
		respErr = c.NoContent(code)
	} else {
		respErr = c.JSON(code, response.ErrorResponse{
			ResultCode: code,
			Message:    message,
		})
	}
	if respErr != nil {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, applog.Fields{
			"path":  c.Request().URL.Path,
			"error": respErr,
		}).Error("에러 응답 전송 실패")
	}
}

// defaultMessage Echo가 생성한 영문 기본 메시지를 한글 메시지로 바꿉니다.
func defaultMessage(code int, message string) string {
	if message != http.StatusText(code) && message != "" {
		return message
	}

	switch code {
	case http.StatusBadRequest:
		return constants.ErrMsgBadRequest
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return constants.ErrMsgNotFound
	case http.StatusRequestEntityTooLarge:
		return constants.ErrMsgRequestEntityTooLarge
	case http.StatusUnsupportedMediaType:
		return constants.ErrMsgUnsupportedMediaType
	case http.StatusTooManyRequests:
		return constants.ErrMsgTooManyRequests
	case http.StatusInternalServerError:
		return constants.ErrMsgInternalServer
	}

	return message
}
