package fetcher

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
)

const (
	minRetryDelay = 100 * time.Millisecond
	maxRetryDelay = 30 * time.Second
)

// RetryFetcher 일시적인 실패를 지수 백오프(Full Jitter)로 재시도합니다.
// 멱등(GET, HEAD, OPTIONS) 요청만 재시도합니다.
type RetryFetcher struct {
	delegate   Fetcher
	maxRetries int
	retryDelay time.Duration

	// 테스트에서 대기 시간을 고정하기 위해 교체합니다.
	jitter func(max time.Duration) time.Duration
}

func NewRetryFetcher(delegate Fetcher, maxRetries int, retryDelay time.Duration) *RetryFetcher {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if retryDelay < minRetryDelay {
		retryDelay = minRetryDelay
	}
	return &RetryFetcher{
		delegate:   delegate,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		jitter:     fullJitter,
	}
}

func (f *RetryFetcher) Do(req *http.Request) (*http.Response, error) {
	if !isIdempotent(req.Method) {
		return f.delegate.Do(req)
	}

	var lastErr error
	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			delay := f.backoff(attempt, lastErr)

			applog.WithComponentAndFields(component, applog.Fields{
				"url":     req.URL.Redacted(),
				"attempt": attempt,
				"delay":   delay.String(),
				"error":   lastErr,
			}).Warn("요청 재시도 대기")

			if err := sleepContext(req.Context(), delay); err != nil {
				return nil, apperrors.Wrap(err, apperrors.Timeout, "재시도 대기 중 요청이 취소되었습니다")
			}
		}

		resp, err := f.delegate.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if req.Context().Err() != nil || !isRetriable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

// backoff 서버가 Retry-After를 보냈다면 그 값을 우선합니다.
func (f *RetryFetcher) backoff(attempt int, lastErr error) time.Duration {
	var statusErr *HTTPStatusError
	if errors.As(lastErr, &statusErr) {
		if d, ok := parseRetryAfter(statusErr.Header.Get("Retry-After")); ok {
			return min(d, maxRetryDelay)
		}
	}

	delay := f.retryDelay << (attempt - 1)
	if delay <= 0 || delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	return f.jitter(delay)
}

func fullJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(max) + 1))
}

func parseRetryAfter(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		return max(time.Until(t), 0), true
	}
	return 0, false
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, "":
		return true
	}
	return false
}

func isRetriable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retriable()
	}

	// 상태 코드 이외의 AppError(본문 크기 초과 등)는 재시도해도 결과가 같다.
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return false
	}

	// 나머지는 네트워크 에러로 간주한다.
	return true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
