package system

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/darkkaiser/wcib-server/internal/pkg/version"
	"github.com/darkkaiser/wcib-server/internal/service/api/constants"
	"github.com/darkkaiser/wcib-server/internal/service/api/model/system"
	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/darkkaiser/wcib-server/internal/service/notification"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	healthErr error
}

func (s *stubSender) Notify(context.Context, notification.Notification) error { return nil }
func (s *stubSender) NotifyDefaultWithError(string)                          {}
func (s *stubSender) Health() error                                          { return s.healthErr }

func TestHealthCheckHandler(t *testing.T) {
	populated := catalog.NewSnapshot([]catalog.Product{
		{UID: "product-1", Name: "Sticker", Price: 5},
		{UID: "product-2", Name: "Hoodie", Price: 50, OutOfStock: true},
	}, "products.json")

	tests := []struct {
		name         string
		snapshot     *catalog.Snapshot
		healthErr    error
		wantStatus   string
		wantCatalog  string
		wantNotifier string
	}{
		{
			name:         "성공: 모든 의존성 정상",
			snapshot:     populated,
			wantStatus:   constants.HealthStatusHealthy,
			wantCatalog:  constants.HealthStatusHealthy,
			wantNotifier: constants.HealthStatusHealthy,
		},
		{
			name:         "실패: 빈 카탈로그",
			snapshot:     nil,
			wantStatus:   constants.HealthStatusUnhealthy,
			wantCatalog:  constants.HealthStatusUnhealthy,
			wantNotifier: constants.HealthStatusHealthy,
		},
		{
			name:         "실패: 알림 서비스 중지",
			snapshot:     populated,
			healthErr:    errors.New("알림 서비스가 실행 중이 아닙니다"),
			wantStatus:   constants.HealthStatusUnhealthy,
			wantCatalog:  constants.HealthStatusHealthy,
			wantNotifier: constants.HealthStatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(catalog.NewStore(tt.snapshot), &stubSender{healthErr: tt.healthErr}, version.Info{})

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

			require.NoError(t, h.HealthCheckHandler(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp system.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantCatalog, resp.Dependencies[constants.DependencyCatalog].Status)
			assert.Equal(t, tt.wantNotifier, resp.Dependencies[constants.DependencyNotificationService].Status)
		})
	}
}

func TestHealthCheckHandler_CatalogMessage(t *testing.T) {
	snapshot := catalog.NewSnapshot([]catalog.Product{
		{UID: "product-1", Name: "Sticker", Price: 5},
		{UID: "product-2", Name: "Hoodie", Price: 50, OutOfStock: true},
	}, "products.json")
	h := NewHandler(catalog.NewStore(snapshot), &stubSender{}, version.Info{})

	status := h.catalogStatus()

	assert.Equal(t, "상품 2개, 구매 가능 1개 (products.json)", status.Message)
}

func TestVersionHandler(t *testing.T) {
	info := version.Info{Version: "v1.2.0", Commit: "f25b8bf", BuildDate: "2025-07-01", BuildNumber: "42"}
	h := NewHandler(catalog.NewStore(nil), &stubSender{}, info)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/version", nil), rec)

	require.NoError(t, h.VersionHandler(c))

	var resp system.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, system.VersionResponse{
		Version:     "v1.2.0",
		Commit:      "f25b8bf",
		BuildDate:   "2025-07-01",
		BuildNumber: "42",
		GoVersion:   runtime.Version(),
	}, resp)
}

func TestNewHandler_Panics(t *testing.T) {
	assert.Panics(t, func() { NewHandler(nil, &stubSender{}, version.Info{}) })
	assert.Panics(t, func() { NewHandler(catalog.NewStore(nil), nil, version.Info{}) })
}
