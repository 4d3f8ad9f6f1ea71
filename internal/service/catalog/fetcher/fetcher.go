// Package fetcher 상점 페이지를 가져오는 HTTP 클라이언트 체인을 제공합니다.
//
// 체인은 데코레이터 형태로 조립됩니다:
//
//	RetryFetcher -> StatusCodeFetcher -> MaxBytesFetcher -> HTTPFetcher
package fetcher

import (
	"context"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	"golang.org/x/net/html/charset"
)

// component Fetcher 로깅용 컴포넌트 이름
const component = "catalog.fetcher"

// maxDrainBytes 커넥션 재사용을 위해 버리는 응답 본문의 최대 크기
const maxDrainBytes = 64 * 1024

// Fetcher HTTP 요청을 수행합니다. 반환된 응답의 Body는 호출자가 닫아야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetchHTMLDocument url의 HTML 문서를 가져와 goquery 문서로 파싱합니다.
// Content-Type 헤더의 charset을 참고하여 UTF-8이 아닌 문서도 UTF-8로 변환합니다.
func FetchHTMLDocument(ctx context.Context, f Fetcher, url string, header map[string]string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "요청을 생성할 수 없습니다 (URL: %s)", url)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := f.Do(req)
	if err != nil {
		if apperrors.UnderlyingType(err) != apperrors.Unknown {
			return nil, err
		}
		return nil, apperrors.Wrapf(err, apperrors.Unavailable, "페이지(%s) 요청 중 네트워크 에러가 발생했습니다", url)
	}
	defer resp.Body.Close()

	return ParseHTML(resp.Body, resp.Header.Get("Content-Type"), url)
}

// ParseHTML r의 HTML을 goquery 문서로 파싱합니다.
// contentType의 charset 또는 문서의 meta 태그를 참고하여 UTF-8로 변환합니다. source는 에러 메시지에만 사용됩니다.
func ParseHTML(r io.Reader, contentType, source string) (*goquery.Document, error) {
	utf8Reader, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ExecutionFailed, "페이지(%s)의 인코딩 변환이 실패하였습니다", source)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "페이지(%s)의 HTML 파싱이 실패하였습니다", source)
	}

	return doc, nil
}

// drainAndCloseBody 커넥션을 재사용할 수 있도록 남은 본문 일부를 읽어 버린 뒤 닫습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
	_ = body.Close()
}
