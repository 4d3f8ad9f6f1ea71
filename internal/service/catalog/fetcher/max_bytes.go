package fetcher

import (
	"errors"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
)

// DefaultMaxBytes 응답 본문 크기 제한 기본값 (10MB)
const DefaultMaxBytes = 10 * 1024 * 1024

// MaxBytesFetcher 응답 본문 크기를 제한합니다.
type MaxBytesFetcher struct {
	delegate Fetcher
	limit    int64
}

// NewMaxBytesFetcher limit이 0 이하이면 DefaultMaxBytes를 사용합니다.
func NewMaxBytesFetcher(delegate Fetcher, limit int64) *MaxBytesFetcher {
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	return &MaxBytesFetcher{delegate: delegate, limit: limit}
}

func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)
		return nil, apperrors.Newf(apperrors.InvalidInput, "응답 본문 크기(%d bytes)가 제한(%d bytes)을 초과했습니다", resp.ContentLength, f.limit)
	}

	resp.Body = &maxBytesReader{rc: http.MaxBytesReader(nil, resp.Body, f.limit), limit: f.limit}

	return resp, nil
}

type maxBytesReader struct {
	rc    io.ReadCloser
	limit int64
}

func (r *maxBytesReader) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	var maxErr *http.MaxBytesError
	if err != nil && errors.As(err, &maxErr) {
		return n, apperrors.Newf(apperrors.InvalidInput, "응답 본문 크기가 제한(%d bytes)을 초과했습니다", r.limit)
	}
	return n, err
}

func (r *maxBytesReader) Close() error {
	return r.rc.Close()
}
