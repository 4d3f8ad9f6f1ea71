package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/wcib-server/internal/service/api/constants"
	"github.com/darkkaiser/wcib-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "성공: ErrorResponse 메시지 유지",
			method:      http.MethodPost,
			err:         NewBadRequestError("shells는 필수입니다"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "shells는 필수입니다",
		},
		{
			name:        "성공: Echo 기본 404는 한글 메시지로 변환",
			method:      http.MethodGet,
			err:         echo.ErrNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: constants.ErrMsgNotFound,
		},
		{
			name:        "성공: Echo 413 변환",
			method:      http.MethodPost,
			err:         echo.ErrStatusRequestEntityTooLarge,
			wantCode:    http.StatusRequestEntityTooLarge,
			wantMessage: constants.ErrMsgRequestEntityTooLarge,
		},
		{
			name:        "성공: 사용자 지정 문자열 메시지 유지",
			method:      http.MethodGet,
			err:         echo.NewHTTPError(http.StatusConflict, "충돌"),
			wantCode:    http.StatusConflict,
			wantMessage: "충돌",
		},
		{
			name:        "성공: 일반 에러는 500",
			method:      http.MethodGet,
			err:         errors.New("boom"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: constants.ErrMsgInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(tt.method, "/api/v1/wcib", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.ResultCode)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestErrorHandler_HeadAndCommitted(t *testing.T) {
	t.Run("성공: HEAD 요청은 본문 없음", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodHead, "/health", nil), rec)

		ErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("성공: 이미 커밋된 응답은 건드리지 않음", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
		require.NoError(t, c.String(http.StatusOK, "ok"))

		ErrorHandler(errors.New("late"), c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *echo.HTTPError
		code int
	}{
		{"성공: 400", NewBadRequestError("x"), http.StatusBadRequest},
		{"성공: 404", NewNotFoundError("x"), http.StatusNotFound},
		{"성공: 413", NewRequestEntityTooLargeError("x"), http.StatusRequestEntityTooLarge},
		{"성공: 415", NewUnsupportedMediaTypeError("x"), http.StatusUnsupportedMediaType},
		{"성공: 429", NewTooManyRequestsError("x"), http.StatusTooManyRequests},
		{"성공: 500", NewInternalServerError("x"), http.StatusInternalServerError},
		{"성공: 503", NewServiceUnavailableError("x"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, response.ErrorResponse{ResultCode: tt.code, Message: "x"}, tt.err.Message)
		})
	}
}
