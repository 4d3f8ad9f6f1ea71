// Package system 시스템 엔드포인트(헬스체크, 버전)의 응답 모델입니다.
package system

// DependencyStatus 외부 의존성 하나의 상태입니다.
type DependencyStatus struct {
	Status    string `json:"status" example:"healthy"`
	LatencyMs int64  `json:"latency_ms,omitempty" example:"0"`
	Message   string `json:"message,omitempty" example:"상품 42개 (https://summer.hackclub.com/shop)"`
}

// HealthResponse /health 응답입니다.
type HealthResponse struct {
	Status       string                      `json:"status" example:"healthy"`
	Uptime       int64                       `json:"uptime" example:"3600"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// VersionResponse /version 응답입니다.
type VersionResponse struct {
	Version     string `json:"version" example:"v1.2.0"`
	Commit      string `json:"commit" example:"f25b8bf"`
	BuildDate   string `json:"build_date" example:"2025-07-01T10:00:00Z"`
	BuildNumber string `json:"build_number" example:"42"`
	GoVersion   string `json:"go_version" example:"go1.24.0"`
}
