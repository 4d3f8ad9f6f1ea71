// Package system 헬스체크와 버전 정보처럼 인증 없이 호출하는 시스템 엔드포인트를 처리합니다.
package system

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/wcib-server/internal/pkg/version"
	"github.com/darkkaiser/wcib-server/internal/service/api/constants"
	"github.com/darkkaiser/wcib-server/internal/service/api/model/system"
	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/darkkaiser/wcib-server/internal/service/notification"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	store              *catalog.Store
	notificationSender notification.Sender

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(store *catalog.Store, notificationSender notification.Sender, buildInfo version.Info) *Handler {
	if store == nil {
		panic(constants.PanicMsgCatalogStoreRequired)
	}
	if notificationSender == nil {
		panic(constants.PanicMsgNotificationSenderRequired)
	}

	return &Handler{
		store:              store,
		notificationSender: notificationSender,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 의존성(카탈로그, 알림 서비스)의 상태를 확인합니다.
// @Description 하나라도 비정상이면 전체 상태는 unhealthy 입니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := map[string]system.DependencyStatus{
		constants.DependencyCatalog:             h.catalogStatus(),
		constants.DependencyNotificationService: h.notificationStatus(),
	}

	status := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			status = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       status,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

func (h *Handler) catalogStatus() system.DependencyStatus {
	snapshot := h.store.Current()
	if snapshot.Len() == 0 {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: constants.MsgDepStatusCatalogEmpty,
		}
	}

	return system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: fmt.Sprintf("상품 %d개, 구매 가능 %d개 (%s)", snapshot.Len(), snapshot.InStockCount(), snapshot.Source()),
	}
}

func (h *Handler) notificationStatus() system.DependencyStatus {
	if err := h.notificationSender.Health(); err != nil {
		return system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: constants.MsgDepStatusHealthy,
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
