// Package refresh 상점 페이지를 주기적으로 다시 읽어 카탈로그를 교체하는 서비스를 제공합니다.
package refresh

import (
	"context"
	"fmt"
	"html"
	"sync"
	"time"

	"github.com/darkkaiser/wcib-server/internal/config"
	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/darkkaiser/wcib-server/internal/service/catalog/extractor"
	"github.com/darkkaiser/wcib-server/internal/service/catalog/fetcher"
	"github.com/darkkaiser/wcib-server/internal/service/notification"
	"github.com/darkkaiser/wcib-server/pkg/cronx"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/robfig/cron/v3"
)

const component = "catalog.refresh"

const (
	// refreshTimeout 한 번의 갱신(요청, 재시도, 추출 포함)에 허용되는 최대 시간
	refreshTimeout = 2 * time.Minute

	notifyTimeout = 5 * time.Second

	notificationTitle = "카탈로그 갱신"
)

// Refresher 설정된 Cron 스케줄에 맞춰 상점 페이지를 가져와 카탈로그를 교체합니다.
// 갱신이 실패하면 기존 카탈로그를 그대로 유지합니다.
type Refresher struct {
	config config.CatalogRefreshConfig

	store   *catalog.Store
	archive *catalog.Archive
	fetcher fetcher.Fetcher

	notificationSender notification.Sender

	cron *cron.Cron

	// refreshMu 스케줄 실행과 RefreshNow 호출이 겹치지 않도록 직렬화
	refreshMu sync.Mutex

	// startupWG run_on_start 갱신 고루틴
	startupWG sync.WaitGroup

	// runCancel 예약 갱신과 run_on_start 갱신의 컨텍스트를 취소한다.
	runCancel context.CancelFunc

	running   bool
	runningMu sync.Mutex
}

func NewService(c config.CatalogRefreshConfig, store *catalog.Store, archive *catalog.Archive, f fetcher.Fetcher, notificationSender notification.Sender) *Refresher {
	if store == nil {
		panic("catalog.Store는 필수입니다")
	}
	if f == nil {
		panic("Fetcher는 필수입니다")
	}

	return &Refresher{
		config:             c,
		store:              store,
		archive:            archive,
		fetcher:            f,
		notificationSender: notificationSender,
	}
}

// Start 갱신 작업을 Cron에 등록합니다. 비활성화되어 있으면 아무것도 하지 않습니다.
func (r *Refresher) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	r.runningMu.Lock()
	defer r.runningMu.Unlock()

	if !r.config.Enabled {
		serviceStopWG.Done()
		applog.WithComponent(component).Info("카탈로그 자동 갱신이 비활성화되어 있습니다")
		return nil
	}

	if r.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("카탈로그 갱신 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	r.restoreFromArchive()

	r.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	runCtx, runCancel := context.WithCancel(context.Background())

	if _, err := r.cron.AddFunc(r.config.TimeSpec, func() { r.refreshAndReport(runCtx) }); err != nil {
		runCancel()
		serviceStopWG.Done()
		r.cron = nil
		return apperrors.Wrapf(err, apperrors.InvalidInput, "잘못된 Cron 표현식입니다 (TimeSpec: %s)", r.config.TimeSpec)
	}

	r.runCancel = runCancel

	r.cron.Start()
	r.running = true

	if r.config.RunOnStart {
		r.startupWG.Add(1)
		go func() {
			defer r.startupWG.Done()
			r.refreshAndReport(runCtx)
		}()
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"id":        r.config.ID,
		"url":       r.config.URL,
		"time_spec": r.config.TimeSpec,
	}).Info("카탈로그 갱신 서비스 시작됨")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		r.Stop()
	}()

	return nil
}

// Stop 진행 중인 갱신이 끝날 때까지 기다린 뒤 스케줄러를 중지합니다.
func (r *Refresher) Stop() {
	r.runningMu.Lock()
	defer r.runningMu.Unlock()

	if !r.running {
		return
	}

	// 진행 중인 갱신을 먼저 취소해야 재시도 대기 중에도 종료가 지연되지 않는다.
	r.runCancel()

	<-r.cron.Stop().Done()
	r.startupWG.Wait()

	r.cron = nil
	r.runCancel = nil
	r.running = false

	applog.WithComponent(component).Info("카탈로그 갱신 서비스 중지됨")
}

// RefreshNow 상점 페이지를 한 번 가져와 카탈로그를 교체하고 교체된 스냅샷을 반환합니다.
func (r *Refresher) RefreshNow(ctx context.Context) (*catalog.Snapshot, error) {
	r.refreshMu.Lock()
	defer r.refreshMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	started := time.Now()

	doc, err := fetcher.FetchHTMLDocument(ctx, r.fetcher, r.config.URL, r.config.Headers)
	if err != nil {
		return nil, err
	}

	products, stats := extractor.Extract(doc)
	if len(products) == 0 {
		return nil, catalog.ErrEmptyExtraction
	}

	snapshot := catalog.NewSnapshot(products, r.config.URL)
	previous := r.store.Swap(snapshot)

	// 저장 실패는 이미 교체된 카탈로그에 영향을 주지 않으므로 경고만 남긴다.
	if r.archive != nil {
		if err := r.archive.Save(r.config.ID, snapshot); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"id":    r.config.ID,
				"error": err,
			}).Warn("갱신된 카탈로그를 파일로 저장하지 못했습니다")
		}
	}

	if r.config.NotifyChanges && previous.Len() > 0 {
		if changes := catalog.Diff(previous, snapshot); !changes.Empty() {
			r.notifyChanges(changes)
		}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"id":         r.config.ID,
		"products":   snapshot.Len(),
		"previous":   previous.Len(),
		"in_stock":   snapshot.InStockCount(),
		"stats":      stats.String(),
		"elapsed_ms": time.Since(started).Milliseconds(),
	}).Info("카탈로그 갱신 완료")

	return snapshot, nil
}

func (r *Refresher) refreshAndReport(ctx context.Context) {
	if _, err := r.RefreshNow(ctx); err != nil {
		if ctx.Err() != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"id":    r.config.ID,
				"error": err,
			}).Info("서비스 종료로 진행 중인 카탈로그 갱신을 중단했습니다")
			return
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"id":    r.config.ID,
			"url":   r.config.URL,
			"error": err,
		}).Error("카탈로그 갱신 실패: 기존 카탈로그를 유지합니다")

		r.notifyError(err)
	}
}

func (r *Refresher) notifyError(err error) {
	r.notify(fmt.Sprintf("카탈로그(%s) 갱신이 실패하여 기존 카탈로그를 유지합니다.\n\n%s", html.EscapeString(r.config.ID), html.EscapeString(err.Error())), true)
}

func (r *Refresher) notifyChanges(changes catalog.Changes) {
	r.notify(formatChanges(r.config.ID, changes), false)
}

func (r *Refresher) notify(message string, errorOccurred bool) {
	if r.notificationSender == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := r.notificationSender.Notify(ctx, notification.Notification{
		NotifierID:    r.config.NotifierID,
		Title:         notificationTitle,
		Message:       message,
		ErrorOccurred: errorOccurred,
	}); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"id":    r.config.ID,
			"error": err,
		}).Warn("카탈로그 갱신 알림을 보내지 못했습니다")
	}
}

// restoreFromArchive 현재 카탈로그가 비어 있으면 마지막으로 저장된 스냅샷으로 시작한다.
func (r *Refresher) restoreFromArchive() {
	if r.archive == nil || r.store.Current().Len() > 0 {
		return
	}

	snapshot, err := r.archive.Load(r.config.ID)
	if err != nil {
		if !apperrors.Is(err, apperrors.NotFound) {
			applog.WithComponentAndFields(component, applog.Fields{
				"id":    r.config.ID,
				"error": err,
			}).Warn("저장된 카탈로그를 읽지 못했습니다")
		}
		return
	}

	r.store.Swap(snapshot)

	applog.WithComponentAndFields(component, applog.Fields{
		"id":       r.config.ID,
		"products": snapshot.Len(),
	}).Info("저장된 카탈로그로 시작합니다")
}
