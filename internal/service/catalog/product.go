// Package catalog 구매 가능한 상품 카탈로그와 그 스냅샷의 적재, 보관, 교체를 담당합니다.
package catalog

import (
	"time"

	applog "github.com/darkkaiser/wcib-server/pkg/log"
)

// Product 상점에서 판매하는 단일 상품입니다.
type Product struct {
	UID         string   `json:"uid"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Link        *string  `json:"link"`
	Price       int      `json:"price"`
	OutOfStock  bool     `json:"outOfStock"`
}

// Purchasable 재고가 있고 가격이 양수인 상품인지 확인합니다.
func (p *Product) Purchasable() bool {
	return !p.OutOfStock && p.Price > 0
}

// Snapshot 특정 시점의 카탈로그입니다. 생성 이후 변경되지 않으므로 여러 요청이 동시에 공유할 수 있습니다.
type Snapshot struct {
	products []Product
	source   string
	loadedAt time.Time
}

// NewSnapshot products로 스냅샷을 생성합니다.
//
// 같은 이름의 상품이 여러 개이면 처음 등장한 상품만 유지합니다.
// images가 nil인 상품은 빈 슬라이스로 보정하여 JSON 응답에서 항상 배열로 직렬화되도록 합니다.
func NewSnapshot(products []Product, source string) *Snapshot {
	seen := make(map[string]struct{}, len(products))
	kept := make([]Product, 0, len(products))

	for _, p := range products {
		if _, dup := seen[p.Name]; dup {
			applog.WithComponentAndFields(component, applog.Fields{
				"source": source,
				"uid":    p.UID,
				"name":   p.Name,
			}).Warn("중복된 상품명이 발견되어 나중에 등장한 상품을 제외합니다")
			continue
		}
		seen[p.Name] = struct{}{}

		if p.Images == nil {
			p.Images = []string{}
		}
		kept = append(kept, p)
	}

	return &Snapshot{
		products: kept,
		source:   source,
		loadedAt: time.Now(),
	}
}

// emptySnapshot 상품이 하나도 없는 스냅샷입니다.
func emptySnapshot(source string) *Snapshot {
	return NewSnapshot(nil, source)
}

// Products 상품 목록을 카탈로그 순서대로 반환합니다. 반환된 슬라이스는 수정하면 안 됩니다.
func (s *Snapshot) Products() []Product {
	return s.products
}

// Len 상품 수를 반환합니다.
func (s *Snapshot) Len() int {
	return len(s.products)
}

// InStockCount 품절이 아닌 상품 수를 반환합니다.
func (s *Snapshot) InStockCount() int {
	n := 0
	for i := range s.products {
		if !s.products[i].OutOfStock {
			n++
		}
	}
	return n
}

// Source 스냅샷을 만든 출처(파일 경로, 환경 변수 이름, 갱신 작업 URL 등)를 반환합니다.
func (s *Snapshot) Source() string {
	return s.source
}

// LoadedAt 스냅샷이 생성된 시각을 반환합니다.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}
