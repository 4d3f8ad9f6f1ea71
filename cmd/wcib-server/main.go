package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/wcib-server/internal/config"
	"github.com/darkkaiser/wcib-server/internal/pkg/version"
	"github.com/darkkaiser/wcib-server/internal/service"
	"github.com/darkkaiser/wcib-server/internal/service/api"
	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/darkkaiser/wcib-server/internal/service/catalog/fetcher"
	"github.com/darkkaiser/wcib-server/internal/service/catalog/refresh"
	"github.com/darkkaiser/wcib-server/internal/service/notification"
	"github.com/darkkaiser/wcib-server/internal/service/recommend"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
)

// @title WCIB Server API
// @version 1.0.0
// @description "What Can I Buy" 추천 서버의 REST API입니다.
// @description
// @description 보유한 조개(shells)로 상점 카탈로그에서 구매할 수 있는 상품 조합을 추천합니다.
// @description
// @description ## 주요 기능
// @description - 전략(most_valuable, most_products)에 따른 구매 조합 추천
// @description - 크레딧, 배지, 복권 등 상품 유형별 제외 필터
// @description - 상품명 검색 및 카탈로그 요약

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const component = "main"

const banner = `
 __        __ ____ ___  ____    ____
 \ \      / // ___|_ _|| __ )  / ___|   ___  _ __ __   __  ___  _ __
  \ \ /\ / /| |    | | |  _ \  \___ \  / _ \| '__|\ \ / / / _ \| '__|
   \ V  V / | |___ | | | |_) |  ___) ||  __/| |    \ V / |  __/| |
    \_/\_/   \____|___||____/  |____/  \___||_|     \_/   \___||_|
                                                             %s
--------------------------------------------------------------------------------
`

func main() {
	// 1. 설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	configFile := config.DefaultFilename
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	appConfig, err := config.LoadWithFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version":     buildInfo.String(),
		"config_file": configFile,
		"env":         map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	if err := run(appConfig, buildInfo); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": fmt.Sprintf("%+v", err),
		}).Error("서버 실행 실패")

		appLogCloser.Close()
		os.Exit(1)
	}
}

func run(appConfig *config.AppConfig, buildInfo version.Info) error {
	// 카탈로그를 읽지 못하면 추천을 제공할 수 없으므로 기동을 중단한다.
	loader, err := catalog.NewLoader(appConfig.Catalog)
	if err != nil {
		return err
	}
	snapshot, err := loader.Load()
	if err != nil {
		return err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"source":   snapshot.Source(),
		"products": snapshot.Len(),
		"in_stock": snapshot.InStockCount(),
	}).Info("카탈로그 로드 완료")

	archive, err := catalog.NewArchive(appConfig.Catalog.DataDir)
	if err != nil {
		return err
	}

	store := catalog.NewStore(snapshot)

	notificationService := notification.NewService(appConfig.Notifiers)
	refresher := refresh.NewService(appConfig.Catalog.Refresh, store, archive, fetcher.New(fetcher.Config{
		MaxRetries: appConfig.HTTPRetry.MaxRetries,
		RetryDelay: appConfig.HTTPRetry.RetryDelay,
	}), notificationService)
	apiService := api.NewService(appConfig, store, recommend.NewRecommender(store), notificationService, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	// 알림 서비스를 먼저 시작해야 다른 서비스의 기동 실패도 통보할 수 있다.
	services := []service.Service{notificationService, refresher, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			cancel()
			serviceStopWG.Wait()
			return err
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent(component).Info("서버 가동 완료")

	sig := <-termC

	applog.WithComponentAndFields(component, applog.Fields{
		"signal": sig.String(),
	}).Info("종료 신호 수신, 서비스를 중지합니다")

	cancel()
	serviceStopWG.Wait()

	applog.WithComponent(component).Info("서버 종료 완료")

	return nil
}
