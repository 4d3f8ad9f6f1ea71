package notification

import (
	"context"
	"sync"

	"github.com/darkkaiser/wcib-server/internal/config"
	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
)

// notifierCreator 테스트에서 실제 텔레그램 API 대신 가짜 클라이언트를 주입하기 위해 교체합니다.
type notifierCreator func(c config.TelegramConfig) (notifier, error)

// Service 설정된 Notifier들의 수명 주기를 관리하고 알림 요청을 전달합니다.
type Service struct {
	config config.NotifierConfig

	newNotifier notifierCreator

	notifiers       map[string]notifier
	defaultNotifier notifier

	// notifiersStopWG 모든 Notifier 워커의 종료를 대기
	notifiersStopWG sync.WaitGroup

	running   bool
	runningMu sync.RWMutex
}

// NewService 알림 서비스를 생성합니다. Notifier는 Start에서 생성됩니다.
func NewService(c config.NotifierConfig) *Service {
	return &Service{
		config:      c,
		newNotifier: newTelegramNotifier,
	}
}

// Start Notifier들을 생성하고 워커를 실행합니다.
// serviceStopWG는 호출 전에 Add(1) 되어 있어야 하며, 서비스가 완전히 종료되면 Done 됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("Notification 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("Notification 서비스가 이미 시작됨!!!")
		return nil
	}

	notifiers := make(map[string]notifier, len(s.config.Telegrams))
	for _, c := range s.config.Telegrams {
		n, err := s.newNotifier(c)
		if err != nil {
			defer serviceStopWG.Done()
			return newErrNotifierInitFailed(c.ID, err)
		}
		notifiers[n.ID()] = n
	}

	var defaultNotifier notifier
	if len(notifiers) > 0 {
		id := s.config.DefaultNotifierID
		if id == "" {
			id = s.config.Telegrams[0].ID
		}
		defaultNotifier = notifiers[id]
		if defaultNotifier == nil {
			defer serviceStopWG.Done()
			return apperrors.Newf(apperrors.NotFound, "기본 Notifier('%s')를 찾을 수 없습니다", id)
		}
	} else {
		applog.WithComponent(component).Warn("설정된 Notifier가 없습니다. 알림은 로그로만 기록됩니다")
	}

	for _, n := range notifiers {
		s.notifiersStopWG.Add(1)
		go func(n notifier) {
			defer s.notifiersStopWG.Done()
			n.Run(serviceStopCtx)
		}(n)

		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": n.ID(),
		}).Debug("Notifier가 Notification 서비스에 등록됨")
	}

	s.notifiers = notifiers
	s.defaultNotifier = defaultNotifier
	s.running = true

	go s.waitForShutdown(serviceStopCtx, serviceStopWG)

	applog.WithComponent(component).Info("Notification 서비스 시작됨")

	return nil
}

func (s *Service) waitForShutdown(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	<-serviceStopCtx.Done()

	applog.WithComponent(component).Info("Notification 서비스 중지중...")

	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	s.notifiersStopWG.Wait()

	s.runningMu.Lock()
	s.notifiers = nil
	s.defaultNotifier = nil
	s.runningMu.Unlock()

	applog.WithComponent(component).Info("Notification 서비스 중지됨")
}

// Notify NotifierID가 비어 있으면 기본 Notifier로 보냅니다.
func (s *Service) Notify(ctx context.Context, n Notification) error {
	s.runningMu.RLock()
	running := s.running
	target := s.defaultNotifier
	if n.NotifierID != "" {
		target = s.notifiers[n.NotifierID]
	}
	hasNotifiers := len(s.notifiers) > 0
	s.runningMu.RUnlock()

	if !running {
		return ErrServiceNotRunning
	}

	if !hasNotifiers {
		entry := applog.WithComponentAndFields(component, applog.Fields{
			"title":   n.Title,
			"message": n.Message,
		})
		if n.ErrorOccurred {
			entry.Error("알림 (발송 채널 없음)")
		} else {
			entry.Info("알림 (발송 채널 없음)")
		}
		return nil
	}

	if target == nil {
		return ErrNotifierNotFound
	}

	return target.Enqueue(ctx, n)
}

func (s *Service) NotifyDefaultWithError(message string) {
	if err := s.Notify(context.Background(), Notification{Message: message, ErrorOccurred: true}); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"message": message,
			"error":   err,
		}).Error("오류 알림 발송 요청 실패")
	}
}

func (s *Service) Health() error {
	s.runningMu.RLock()
	defer s.runningMu.RUnlock()

	if !s.running {
		return ErrServiceNotRunning
	}
	return nil
}

var _ Sender = (*Service)(nil)
