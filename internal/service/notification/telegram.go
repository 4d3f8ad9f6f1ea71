package notification

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/darkkaiser/wcib-server/internal/config"
	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const (
	// messageMaxLength 텔레그램 API 제한은 4096자이지만 HTML 태그 여유분을 둔다.
	messageMaxLength = 3900

	titleMaxLength = 200

	// shutdownTimeout 종료 시 큐에 남은 메시지를 발송하는 최대 시간
	shutdownTimeout = 30 * time.Second

	maxSendAttempts   = 3
	defaultRetryDelay = 2 * time.Second
	apiClientTimeout  = 30 * time.Second

	msgTitleFormat = "<b>【 %s 】</b>\n\n%s"
	msgErrorFormat = "%s\n\n*** 오류가 발생하였습니다. ***"
)

// botClient 텔레그램 봇 API 중 메시지 발송에 필요한 부분만 추상화합니다.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramNotifier struct {
	id     string
	chatID int64

	client botClient

	// limiter 채팅방당 초당 1회 정책을 지키기 위한 발송 속도 제한
	limiter    *rate.Limiter
	retryDelay time.Duration

	q *queue
}

func newTelegramNotifier(c config.TelegramConfig) (notifier, error) {
	botAPI, err := tgbotapi.NewBotAPIWithClient(c.BotToken, tgbotapi.APIEndpoint, &http.Client{Timeout: apiClientTimeout})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"notifier_id":  c.ID,
		"bot_username": botAPI.Self.UserName,
	}).Debug("텔레그램 봇 인증 완료")

	return newTelegramNotifierWithClient(c.ID, c.ChatID, botAPI), nil
}

func newTelegramNotifierWithClient(id string, chatID int64, client botClient) *telegramNotifier {
	return &telegramNotifier{
		id:         id,
		chatID:     chatID,
		client:     client,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
		retryDelay: defaultRetryDelay,
		q:          newQueue(defaultQueueSize, defaultEnqueueTimeout),
	}
}

func (n *telegramNotifier) ID() string {
	return n.id
}

func (n *telegramNotifier) Enqueue(ctx context.Context, notification Notification) error {
	err := n.q.push(ctx, notification)
	if err == ErrQueueFull {
		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": n.id,
			"title":       notification.Title,
		}).Warn("발송 큐가 가득 차서 알림을 버립니다")
	}
	return err
}

func (n *telegramNotifier) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			n.drain(nil)
			return
		}

		select {
		case notification := <-n.q.c:
			if ctx.Err() != nil {
				n.drain(&notification)
				return
			}
			n.deliver(ctx, notification)

		case <-ctx.Done():
			n.drain(nil)
			return
		}
	}
}

// drain 종료 신호 이후 큐에 남은 알림을 shutdownTimeout 안에서 최대한 발송한다.
// pending은 종료 신호와 동시에 꺼낸 알림이다.
func (n *telegramNotifier) drain(pending *Notification) {
	n.q.close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if pending != nil {
		n.deliver(ctx, *pending)
	}

	dropped := 0
	for {
		notification, ok := n.q.tryPop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			dropped++
			continue
		}
		n.deliver(ctx, notification)
	}

	if dropped > 0 {
		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": n.id,
			"dropped":     dropped,
		}).Warn("종료 시간 초과로 발송하지 못한 알림이 있습니다")
	}
}

// deliver 한 건의 처리 중 발생한 패닉이 워커 루프를 중단시키지 않도록 격리한다.
func (n *telegramNotifier) deliver(ctx context.Context, notification Notification) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"notifier_id": n.id,
				"chat_id":     n.chatID,
				"panic":       r,
			}).Error("알림 발송 중 패닉 발생 (해당 건 스킵)")
		}
	}()

	for _, part := range splitMessage(formatMessage(notification), messageMaxLength) {
		if err := n.send(ctx, part, true); err != nil {
			return
		}
	}
}

func (n *telegramNotifier) send(ctx context.Context, text string, useHTML bool) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	if useHTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}

	var lastErr error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		_, err := n.client.Send(msg)
		if err == nil {
			return nil
		}
		lastErr = err

		code, retryAfter := telegramErrorCode(err)

		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": n.id,
			"chat_id":     n.chatID,
			"attempt":     attempt,
			"code":        code,
			"error":       err,
		}).Warn("텔레그램 메시지 발송 실패")

		// HTML 파싱 에러는 일반 텍스트로 한 번 더 보낸다.
		if useHTML && code == http.StatusBadRequest {
			return n.send(ctx, text, false)
		}
		if code >= 400 && code < 500 && code != http.StatusTooManyRequests {
			return err
		}
		if attempt == maxSendAttempts {
			break
		}

		wait := n.retryDelay
		if retryAfter > 0 {
			wait = time.Duration(retryAfter) * time.Second
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"notifier_id": n.id,
		"chat_id":     n.chatID,
		"error":       lastErr,
	}).Error("텔레그램 메시지 발송 최종 실패")

	return lastErr
}

func telegramErrorCode(err error) (code int, retryAfter int) {
	switch e := err.(type) {
	case tgbotapi.Error:
		return e.Code, e.ResponseParameters.RetryAfter
	case *tgbotapi.Error:
		return e.Code, e.ResponseParameters.RetryAfter
	}
	return 0, 0
}

// formatMessage 제목은 자른 뒤에 이스케이프한다. 순서가 바뀌면 '&lt;' 같은 엔티티가 잘릴 수 있다.
func formatMessage(n Notification) string {
	message := n.Message
	if n.Title != "" {
		title := n.Title
		if utf8.RuneCountInString(title) > titleMaxLength {
			title = string([]rune(title)[:titleMaxLength]) + "..."
		}
		message = fmt.Sprintf(msgTitleFormat, html.EscapeString(title), message)
	}
	if n.ErrorOccurred {
		message = fmt.Sprintf(msgErrorFormat, message)
	}
	return message
}

// splitMessage 줄 단위로 limit 바이트 이하의 조각으로 나눕니다.
// 한 줄이 limit보다 길면 UTF-8 문자 경계에서 자릅니다.
func splitMessage(message string, limit int) []string {
	if len(message) <= limit {
		return []string{message}
	}

	var parts []string
	var sb strings.Builder

	flush := func() {
		if sb.Len() > 0 {
			parts = append(parts, sb.String())
			sb.Reset()
		}
	}

	for _, line := range strings.Split(message, "\n") {
		needed := len(line)
		if sb.Len() > 0 {
			needed++
		}
		if sb.Len()+needed <= limit {
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(line)
			continue
		}

		flush()
		for len(line) > limit {
			var chunk string
			chunk, line = safeSplit(line, limit)
			parts = append(parts, chunk)
		}
		sb.WriteString(line)
	}
	flush()

	return parts
}

func safeSplit(s string, limit int) (chunk, remainder string) {
	if len(s) <= limit {
		return s, ""
	}

	i := limit
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	if i == 0 {
		return s[:limit], s[limit:]
	}
	return s[:i], s[i:]
}
