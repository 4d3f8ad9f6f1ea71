// Package mark 알림 메시지에서 항목의 상태를 표시하는 이모지 마크를 제공합니다.
package mark

// Mark 알림 메시지에 붙이는 이모지 마크입니다.
type Mark string

const (
	// 신규 상품
	New Mark = "🆕"

	// 가격 변경
	Modified Mark = "🔁"

	// 품절
	Unavailable Mark = "🚫"

	// 재입고
	Restocked Mark = "✅"

	// 판매 종료(카탈로그에서 사라짐)
	Removed Mark = "🗑️"

	// 조개(가격 단위)
	Shell Mark = "🐚"

	// 오류
	Alert Mark = "🚨"
)

// Values 정의된 모든 마크를 반환합니다.
func Values() []Mark {
	return []Mark{New, Modified, Unavailable, Restocked, Removed, Shell, Alert}
}

// WithSpace 마크 앞에 공백을 붙여 반환합니다. 빈 마크는 빈 문자열입니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return " " + string(m)
}

func (m Mark) String() string {
	return string(m)
}
