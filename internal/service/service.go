// Package service 백그라운드 서비스가 공통으로 따르는 생명주기 규약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service main에서 일괄 시작하고 종료하는 서비스입니다.
//
// 호출자는 Start 전에 serviceStopWG.Add(1)을 호출합니다. 서비스는 serviceStopCtx가 취소되어
// 정리가 끝났을 때, 또는 Start가 실패했을 때 정확히 한 번 serviceStopWG.Done()을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
