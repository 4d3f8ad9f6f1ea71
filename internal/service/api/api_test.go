package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/wcib-server/internal/config"
	"github.com/darkkaiser/wcib-server/internal/pkg/version"
	"github.com/darkkaiser/wcib-server/internal/testutil"
	"github.com/darkkaiser/wcib-server/internal/service/api/handler/system"
	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/darkkaiser/wcib-server/internal/service/notification"
	"github.com/darkkaiser/wcib-server/internal/service/recommend"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []string
}

func (s *recordingSender) Notify(context.Context, notification.Notification) error { return nil }

func (s *recordingSender) NotifyDefaultWithError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

func (s *recordingSender) Health() error { return nil }

func (s *recordingSender) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.messages...)
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store := catalog.NewStore(catalog.NewSnapshot([]catalog.Product{
		{UID: "product-1", Name: "Sticker", Price: 5},
	}, "test"))

	e := NewHTTPServer(HTTPServerConfig{
		AllowOrigins:      []string{"https://wcib.example.com"},
		RequestsPerSecond: 100,
		Burst:             100,
	})
	RegisterRoutes(e, system.NewHandler(store, &recordingSender{}, version.Info{Version: "test"}))

	return e
}

func TestNewHTTPServer_Middlewares(t *testing.T) {
	e := newTestServer(t)

	t.Run("성공: Request ID와 보안 헤더", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
		assert.NoError(t, err, "Request ID는 UUID여야 합니다")
		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	})

	t.Run("성공: 허용된 Origin CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(echo.HeaderOrigin, "https://wcib.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "https://wcib.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("실패: 등록되지 않은 경로는 JSON 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"result_code":404`)
	})

	t.Run("실패: 본문 크기 초과", func(t *testing.T) {
		e.POST("/echo", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("a", 65*1024)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestRegisterRoutes(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name     string
		path     string
		wantCode int
	}{
		{name: "성공: 헬스체크", path: "/health", wantCode: http.StatusOK},
		{name: "성공: 버전", path: "/version", wantCode: http.StatusOK},
		{name: "성공: Swagger 문서", path: "/swagger/doc.json", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "test", body["version"])
}

func newTestService(port int, sender notification.Sender) *Service {
	appConfig := &config.AppConfig{}
	appConfig.API.WS.ListenPort = port
	appConfig.API.CORS.AllowOrigins = []string{"*"}
	appConfig.API.RateLimit.RequestsPerSecond = 10
	appConfig.API.RateLimit.Burst = 10

	store := catalog.NewStore(nil)

	return NewService(appConfig, store, recommend.NewRecommender(store), sender, version.Info{})
}

func TestService_StartAndShutdown(t *testing.T) {
	port := testutil.FreePort(t)
	sender := &recordingSender{}
	s := newTestService(port, sender)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/products", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	// 중복 시작은 무시하고 WaitGroup만 정리한다.
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	cancel()
	wg.Wait()

	s.runningMu.Lock()
	assert.False(t, s.running)
	s.runningMu.Unlock()
	assert.Empty(t, sender.Messages(), "정상 종료 시 알림이 발생하면 안 됩니다")
}

func TestService_StartTLS(t *testing.T) {
	port := testutil.FreePort(t)
	certFile, keyFile := testutil.SelfSignedCert(t)

	s := newTestService(port, &recordingSender{})
	s.appConfig.API.WS.TLSServer = true
	s.appConfig.API.WS.TLSCertFile = certFile
	s.appConfig.API.WS.TLSKeyFile = keyFile

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	defer func() {
		cancel()
		wg.Wait()
	}()

	testutil.WaitForServer(t, port, 5*time.Second)

	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
	}
	resp, err := client.Get(fmt.Sprintf("https://127.0.0.1:%d/health", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, resp.TLS)
}

func TestService_UnexpectedExit(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	sender := &recordingSender{}
	s := newTestService(l.Addr().(*net.TCPAddr).Port, sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	wg.Wait()

	messages := sender.Messages()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "치명적인 오류")
}

func TestNewService_Panics(t *testing.T) {
	store := catalog.NewStore(nil)
	rec := recommend.NewRecommender(store)
	cfg := &config.AppConfig{}
	sender := &recordingSender{}

	assert.Panics(t, func() { NewService(nil, store, rec, sender, version.Info{}) })
	assert.Panics(t, func() { NewService(cfg, nil, rec, sender, version.Info{}) })
	assert.Panics(t, func() { NewService(cfg, store, nil, sender, version.Info{}) })
	assert.Panics(t, func() { NewService(cfg, store, rec, nil, version.Info{}) })
}
