package catalog

import (
	"sync/atomic"
)

// Store 현재 서비스 중인 카탈로그 스냅샷을 보관합니다.
//
// 요청 처리 측은 Current()로 얻은 스냅샷 하나만 사용하고, 갱신 작업은 Swap()으로 포인터를 통째로 교체합니다.
// 따라서 요청 도중에 카탈로그가 바뀌어도 한 요청은 항상 일관된 스냅샷을 봅니다.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore initial을 현재 스냅샷으로 하는 Store를 생성합니다. initial이 nil이면 빈 스냅샷을 사용합니다.
func NewStore(initial *Snapshot) *Store {
	s := &Store{}
	if initial == nil {
		initial = emptySnapshot("")
	}
	s.current.Store(initial)
	return s
}

// Current 현재 스냅샷을 반환합니다. nil을 반환하지 않습니다.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Swap next로 교체하고 이전 스냅샷을 반환합니다. next가 nil이면 교체하지 않습니다.
func (s *Store) Swap(next *Snapshot) *Snapshot {
	if next == nil {
		return s.current.Load()
	}
	return s.current.Swap(next)
}
