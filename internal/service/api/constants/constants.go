// Package constants API 서비스 전반에서 공유하는 상수를 정의합니다.
package constants

import "time"

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	ComponentService                 = "api.service"
	ComponentHandler                 = "api.handler"
	ComponentErrorHandler            = "api.error_handler"
	ComponentMiddlewareRateLimit     = "api.middleware.rate_limit"
	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"
	ComponentMiddlewareContentType   = "api.middleware.content_type"
	ComponentMiddlewareHTTPLogger    = "api.middleware.http_logger"
)

// 서버 설정 기본값입니다.
const (
	// DefaultRequestTimeout 요청 하나를 처리하는 최대 시간
	DefaultRequestTimeout = 60 * time.Second

	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 65 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultMaxBodySize 추천 요청 본문은 수 KB 수준이므로 넉넉하게 잡는다.
	DefaultMaxBodySize = "64K"

	// ShutdownTimeout HTTP 서버 Graceful Shutdown 대기 시간
	ShutdownTimeout = 5 * time.Second
)

// 헬스체크 상태값입니다.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	DependencyCatalog             = "catalog"
	DependencyNotificationService = "notification_service"

	MsgDepStatusHealthy      = "정상 작동 중"
	MsgDepStatusCatalogEmpty = "카탈로그에 상품이 없습니다"
)

// SensitiveQueryParams 접근 로그에서 값을 가려야 하는 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
