// Package response API 공통 응답 모델을 정의합니다.
package response

// ErrorResponse 모든 에러 응답의 본문입니다.
type ErrorResponse struct {
	// HTTP 상태 코드와 같은 값
	ResultCode int `json:"result_code" example:"400"`

	Message string `json:"message" example:"shells는 필수입니다"`
}
