package fetcher

import (
	"net/http"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "Mozilla/5.0 (compatible; wcib-server/1.0; +https://github.com/darkkaiser/wcib-server)"
)

// HTTPFetcher net/http 클라이언트로 실제 요청을 전송합니다.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher timeout이 0 이하이면 기본 타임아웃(30초)을 사용합니다.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", defaultUserAgent)
	}
	return h.client.Do(req)
}
