package notification

import (
	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
)

var (
	// ErrServiceNotRunning 서비스가 시작 전이거나 종료된 경우
	ErrServiceNotRunning = apperrors.New(apperrors.Unavailable, "Notification 서비스가 실행 중이 아니어서 알림을 보낼 수 없습니다")

	// ErrNotifierNotFound 설정에 등록되지 않은 Notifier ID
	ErrNotifierNotFound = apperrors.New(apperrors.NotFound, "등록되지 않은 알림 채널입니다. 설정 파일을 확인해 주세요")

	// ErrQueueFull 발송 큐가 대기 시간 내에 비워지지 않음
	ErrQueueFull = apperrors.New(apperrors.Unavailable, "알림 발송 큐가 가득 찼습니다")

	// ErrClosed 이미 종료된 Notifier
	ErrClosed = apperrors.New(apperrors.Unavailable, "알림 채널이 종료되었습니다")
)

func newErrNotifierInitFailed(id string, err error) error {
	return apperrors.Wrapf(err, apperrors.Internal, "Notifier('%s') 초기화 중 에러가 발생했습니다", id)
}
