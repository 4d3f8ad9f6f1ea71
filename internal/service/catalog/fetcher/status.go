package fetcher

import (
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
)

const maxBodySnippet = 512

// HTTPStatusError 2xx 이외의 상태 코드를 받았을 때의 에러입니다.
type HTTPStatusError struct {
	StatusCode  int
	URL         string
	Header      http.Header
	BodySnippet string
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s) URL: %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
	if e.BodySnippet != "" {
		msg += ", Body: " + e.BodySnippet
	}
	return msg
}

// Retriable 다시 요청하면 성공할 가능성이 있는 상태 코드인지 확인합니다.
// 408, 429와 501/505/511을 제외한 5xx가 해당합니다.
func (e *HTTPStatusError) Retriable() bool {
	switch e.StatusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	case http.StatusNotImplemented, http.StatusHTTPVersionNotSupported, http.StatusNetworkAuthenticationRequired:
		return false
	}
	return e.StatusCode >= 500
}

// StatusCodeFetcher 2xx가 아닌 응답을 에러로 변환합니다.
type StatusCodeFetcher struct {
	delegate Fetcher
}

func NewStatusCodeFetcher(delegate Fetcher) *StatusCodeFetcher {
	return &StatusCodeFetcher{delegate: delegate}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippet))
	drainAndCloseBody(resp.Body)

	statusErr := &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		URL:         req.URL.Redacted(),
		Header:      resp.Header,
		BodySnippet: string(snippet),
	}

	errType := apperrors.ExecutionFailed
	switch {
	case resp.StatusCode == http.StatusNotFound:
		errType = apperrors.NotFound
	case statusErr.Retriable():
		errType = apperrors.Unavailable
	}

	return nil, apperrors.Wrapf(statusErr, errType, "페이지 요청이 실패하였습니다 (HTTP %d)", resp.StatusCode)
}
