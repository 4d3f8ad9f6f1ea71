package fetcher

import "time"

// Config Fetcher 체인 구성 값입니다.
type Config struct {
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
	MaxBytes   int64
}

// New 재시도, 상태 코드 검사, 본문 크기 제한이 적용된 Fetcher 체인을 생성합니다.
func New(cfg Config) Fetcher {
	var f Fetcher = NewHTTPFetcher(cfg.Timeout)
	f = NewMaxBytesFetcher(f, cfg.MaxBytes)
	f = NewStatusCodeFetcher(f)
	f = NewRetryFetcher(f, cfg.MaxRetries, cfg.RetryDelay)
	return f
}
