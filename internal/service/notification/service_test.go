package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/wcib-server/internal/config"
	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, c config.NotifierConfig) (*Service, map[string]*fakeBot) {
	t.Helper()

	bots := make(map[string]*fakeBot)
	s := NewService(c)
	s.newNotifier = func(tc config.TelegramConfig) (notifier, error) {
		bot := &fakeBot{}
		bots[tc.ID] = bot
		return newTestNotifier(tc.ID, bot), nil
	}
	return s, bots
}

func startService(t *testing.T, s *Service) (context.CancelFunc, *sync.WaitGroup) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	return cancel, wg
}

func TestService_Notify(t *testing.T) {
	s, bots := newTestService(t, config.NotifierConfig{
		DefaultNotifierID: "ops",
		Telegrams: []config.TelegramConfig{
			{ID: "ops", ChatID: 1},
			{ID: "dev", ChatID: 2},
		},
	})
	cancel, wg := startService(t, s)

	require.NoError(t, s.Health())
	require.NoError(t, s.Notify(context.Background(), Notification{Message: "기본"}))
	require.NoError(t, s.Notify(context.Background(), Notification{NotifierID: "dev", Message: "개발"}))
	s.NotifyDefaultWithError("실패")

	err := s.Notify(context.Background(), Notification{NotifierID: "unknown", Message: "x"})
	assert.ErrorIs(t, err, ErrNotifierNotFound)

	assert.Eventually(t, func() bool {
		return len(bots["ops"].messages()) == 2 && len(bots["dev"].messages()) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	wg.Wait()

	assert.ErrorIs(t, s.Health(), ErrServiceNotRunning)
	assert.ErrorIs(t, s.Notify(context.Background(), Notification{Message: "x"}), ErrServiceNotRunning)
}

func TestService_NoNotifiers(t *testing.T) {
	s, _ := newTestService(t, config.NotifierConfig{})
	cancel, wg := startService(t, s)
	defer func() {
		cancel()
		wg.Wait()
	}()

	assert.NoError(t, s.Notify(context.Background(), Notification{Message: "로그로만 기록"}))
	assert.NoError(t, s.Health())
}

func TestService_StartFailures(t *testing.T) {
	t.Run("실패: 기본 Notifier 없음", func(t *testing.T) {
		s, _ := newTestService(t, config.NotifierConfig{
			DefaultNotifierID: "missing",
			Telegrams:         []config.TelegramConfig{{ID: "ops"}},
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		wg := &sync.WaitGroup{}
		wg.Add(1)

		err := s.Start(ctx, wg)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.NotFound))
		wg.Wait()
	})

	t.Run("실패: Notifier 생성 에러", func(t *testing.T) {
		s := NewService(config.NotifierConfig{Telegrams: []config.TelegramConfig{{ID: "ops"}}})
		s.newNotifier = func(config.TelegramConfig) (notifier, error) {
			return nil, errors.New("unauthorized")
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		wg := &sync.WaitGroup{}
		wg.Add(1)

		err := s.Start(ctx, wg)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Internal))
		wg.Wait()
	})

	t.Run("성공: 중복 시작은 무시", func(t *testing.T) {
		s, _ := newTestService(t, config.NotifierConfig{})
		cancel, wg := startService(t, s)

		wg.Add(1)
		require.NoError(t, s.Start(context.Background(), wg))

		cancel()
		wg.Wait()
	})
}

func TestService_NotStarted(t *testing.T) {
	s := NewService(config.NotifierConfig{})

	assert.ErrorIs(t, s.Health(), ErrServiceNotRunning)
	assert.ErrorIs(t, s.Notify(context.Background(), Notification{}), ErrServiceNotRunning)
}
