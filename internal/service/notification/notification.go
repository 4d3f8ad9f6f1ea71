// Package notification 운영자에게 알림 메시지를 발송합니다.
//
// 알림은 설정된 텔레그램 봇으로 발송되며, 설정된 봇이 없으면 로그로만 남습니다.
package notification

import "context"

// component Notification 서비스 로깅용 컴포넌트 이름
const component = "notification.service"

// Notification 발송할 알림 한 건입니다.
type Notification struct {
	// NotifierID 발송할 Notifier ID (빈 값: 기본 Notifier)
	NotifierID string

	Title         string
	Message       string
	ErrorOccurred bool
}

// Sender 알림 발송 기능을 제공하는 인터페이스입니다.
// 카탈로그 갱신 서비스, API 서버 등은 이 인터페이스를 통해 알림을 보냅니다.
type Sender interface {
	// Notify 알림을 발송 큐에 등록합니다. 실제 전송 결과와는 무관합니다.
	Notify(ctx context.Context, n Notification) error

	// NotifyDefaultWithError 기본 Notifier로 오류 알림을 보냅니다.
	// 실패는 로그로만 남깁니다.
	NotifyDefaultWithError(message string)

	// Health 서비스가 실행 중이 아니면 에러를 반환합니다.
	Health() error
}

// notifier 개별 알림 채널 구현체입니다.
type notifier interface {
	ID() string

	// Run 큐를 소비하여 실제 발송을 수행합니다. ctx가 취소되면 남은 큐를 정리하고 반환합니다.
	Run(ctx context.Context)

	Enqueue(ctx context.Context, n Notification) error
}
