package errors

import "strconv"

// ErrorType 에러의 종류입니다. HTTP 상태 코드 결정과 로그 레벨 결정에 사용됩니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그)
	Internal

	// System 디스크, 네트워크 등 인프라 오류
	System

	// InvalidInput 입력값 검증 실패
	InvalidInput

	// NotFound 리소스 없음
	NotFound

	// ExecutionFailed 외부 호출 등 작업 수행 실패
	ExecutionFailed

	// ParsingFailed 데이터 파싱/디코딩 실패
	ParsingFailed

	// Timeout 시간 초과
	Timeout

	// Unavailable 일시적 사용 불가
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	InvalidInput:    "InvalidInput",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
