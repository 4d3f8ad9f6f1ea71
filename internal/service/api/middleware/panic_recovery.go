package middleware

import (
	"net/http"
	"runtime"

	"github.com/darkkaiser/wcib-server/internal/service/api/constants"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// stackBufferSize 패닉 스택 트레이스를 담을 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러에서 발생한 패닉을 복구하여 500 응답으로 바꾸는 미들웨어를 반환합니다.
// 스택 트레이스는 로그에만 남기고 클라이언트에게는 노출하지 않습니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				// http.ErrAbortHandler 는 net/http 가 직접 처리하도록 다시 던진다.
				if r == http.ErrAbortHandler {
					panic(r)
				}

				err := newErrPanicRecovered(r)

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error":  err,
					"stack":  string(stack[:length]),
					"method": c.Request().Method,
					"path":   c.Request().URL.Path,
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error("PANIC RECOVERED")

				c.Error(err)
				returnErr = nil
			}()

			return next(c)
		}
	}
}
