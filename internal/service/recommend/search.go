package recommend

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/darkkaiser/wcib-server/internal/service/catalog"
)

const (
	// SearchMinQueryLength 검색어 최소 길이 (문자 수)
	SearchMinQueryLength = 2

	// SearchMaxMatches 반환하는 최대 이름 수. 이 수만큼 찾으면 HasMore가 true 입니다.
	SearchMaxMatches = 8

	MessageQueryTooShort = "Query must be at least 2 characters"
)

// SearchResult 이름 검색 결과
type SearchResult struct {
	Matches []string `json:"matches"`
	HasMore bool     `json:"hasMore"`
	Count   *int     `json:"count,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Search 재고가 있는 상품 중 이름에 query가 포함된 상품의 이름을 찾습니다.
// 카탈로그 순서로 앞에서부터 SearchMaxMatches개를 고른 뒤 이름순으로 정렬합니다.
func Search(products []catalog.Product, query string) SearchResult {
	if utf8.RuneCountInString(query) < SearchMinQueryLength {
		return SearchResult{
			Matches: []string{},
			Message: MessageQueryTooShort,
		}
	}

	q := strings.ToLower(query)

	matches := make([]string, 0, SearchMaxMatches)
	for _, p := range products {
		if p.OutOfStock || !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		matches = append(matches, p.Name)
		if len(matches) == SearchMaxMatches {
			break
		}
	}
	slices.Sort(matches)

	count := len(matches)
	return SearchResult{
		Matches: matches,
		HasMore: count == SearchMaxMatches,
		Count:   &count,
	}
}

// Summary 카탈로그 요약
type Summary struct {
	HasProducts bool `json:"hasProducts"`
	Count       int  `json:"count"`
}

// Summarize Count는 재고가 있는 상품 수 입니다.
func Summarize(s *catalog.Snapshot) Summary {
	return Summary{
		HasProducts: s.Len() > 0,
		Count:       s.InStockCount(),
	}
}
