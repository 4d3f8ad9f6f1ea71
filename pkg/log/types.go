// Package log 애플리케이션 전역 로깅 기능을 제공합니다.
//
// logrus를 기반으로 하며, 레벨별 파일 분리와 lumberjack 기반 로테이션을 지원합니다.
// 호출 측에서는 logrus를 직접 import 하지 않고 이 패키지의 별칭 타입과 함수만 사용합니다.
package log

import (
	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels logrus.AllLevels의 별칭입니다.
var AllLevels = logrus.AllLevels

// Fields 구조화된 로그 필드입니다.
type Fields = logrus.Fields

// Entry logrus.Entry의 별칭입니다.
type Entry = logrus.Entry

// Logger logrus.Logger의 별칭입니다.
type Logger = logrus.Logger

// Formatter logrus.Formatter의 별칭입니다.
type Formatter = logrus.Formatter

// StandardLogger 전역 Logger 인스턴스를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithComponent component 필드가 설정된 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드가 설정된 Entry를 반환합니다.
// 전달된 fields 맵은 변경하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component

	return logrus.WithFields(merged)
}

// SetDebugMode 디버그 모드 여부에 따라 전역 로그 레벨을 조정합니다.
//   - true: Trace 레벨 (모든 로그 출력)
//   - false: Info 레벨
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// Info 전역 Logger로 Info 레벨 로그를 기록합니다.
func Info(args ...any) {
	logrus.Info(args...)
}

// Warn 전역 Logger로 Warn 레벨 로그를 기록합니다.
func Warn(args ...any) {
	logrus.Warn(args...)
}

// Error 전역 Logger로 Error 레벨 로그를 기록합니다.
func Error(args ...any) {
	logrus.Error(args...)
}

// Fatal 전역 Logger로 Fatal 레벨 로그를 기록한 뒤 프로세스를 종료합니다.
func Fatal(args ...any) {
	logrus.Fatal(args...)
}
