// Package strutil 문자열 처리 유틸리티 함수를 제공합니다.
package strutil

import (
	"strings"
	"unicode/utf8"
)

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백 문자를 하나의 공백으로 축약합니다.
// 예: "  hello \n  world  " -> "hello world"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ContainsAny s에 substrs 중 하나라도 포함되어 있는지 확인합니다.
func ContainsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Mask 토큰 등 민감한 값을 로그에 남길 수 있도록 마스킹합니다.
//   - 3자 이하: "***"
//   - 12자 이하: 앞 4자 + "***"
//   - 그 외: 앞 4자 + "***" + 뒤 4자
func Mask(s string) string {
	if s == "" {
		return ""
	}

	n := utf8.RuneCountInString(s)
	if n <= 3 {
		return "***"
	}

	r := []rune(s)
	if n <= 12 {
		return string(r[:4]) + "***"
	}
	return string(r[:4]) + "***" + string(r[n-4:])
}
