package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/wcib-server/internal/service/api/constants"
	"github.com/darkkaiser/wcib-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/wcib-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig Echo 서버 생성 옵션입니다.
type HTTPServerConfig struct {
	Debug bool

	AllowOrigins []string

	// RequestsPerSecond, Burst 클라이언트 IP별 요청 제한
	RequestsPerSecond float64
	Burst             int

	// RequestTimeout 0이면 constants.DefaultRequestTimeout 을 사용합니다.
	RequestTimeout time.Duration
}

// NewHTTPServer 공통 미들웨어가 적용된 Echo 인스턴스를 생성합니다.
//
// 미들웨어 적용 순서:
//  1. PanicRecovery
//  2. RequestID (UUID)
//  3. Server 헤더 제거
//  4. HTTPLogger
//  5. RateLimit
//  6. BodyLimit
//  7. Timeout
//  8. CORS
//  9. Secure
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimit(cfg.RequestsPerSecond, cfg.Burst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost},
	}))
	e.Use(middleware.Secure())

	return e
}
