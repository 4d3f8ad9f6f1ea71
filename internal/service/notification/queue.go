package notification

import (
	"context"
	"sync"
	"time"
)

const (
	defaultQueueSize      = 100
	defaultEnqueueTimeout = 3 * time.Second
)

// queue Notifier가 공통으로 사용하는 발송 대기열입니다.
//
// 채널은 다중 생산자 환경에서 닫지 않으며, 종료는 done 채널로 전파한다.
type queue struct {
	c              chan Notification
	done           chan struct{}
	closeOnce      sync.Once
	enqueueTimeout time.Duration
}

func newQueue(size int, enqueueTimeout time.Duration) *queue {
	return &queue{
		c:              make(chan Notification, size),
		done:           make(chan struct{}),
		enqueueTimeout: enqueueTimeout,
	}
}

// push 큐가 가득 차 있으면 enqueueTimeout 동안 기다린 뒤 ErrQueueFull을 반환합니다.
func (q *queue) push(ctx context.Context, n Notification) error {
	select {
	case <-q.done:
		return ErrClosed
	default:
	}

	timer := time.NewTimer(q.enqueueTimeout)
	defer timer.Stop()

	select {
	case q.c <- n:
		return nil
	case <-q.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrQueueFull
	}
}

// tryPop 대기 없이 꺼냅니다.
func (q *queue) tryPop() (Notification, bool) {
	select {
	case n := <-q.c:
		return n, true
	default:
		return Notification{}, false
	}
}

func (q *queue) close() {
	q.closeOnce.Do(func() { close(q.done) })
}
