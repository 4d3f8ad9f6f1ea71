// Package middleware Echo 서버에 적용하는 공통 미들웨어를 제공합니다.
//
// 등록 순서는 api.NewHTTPServer 에서 결정하며, PanicRecovery가 가장 바깥쪽에 위치해야
// 이후 미들웨어와 핸들러에서 발생한 패닉을 모두 잡을 수 있습니다.
package middleware
