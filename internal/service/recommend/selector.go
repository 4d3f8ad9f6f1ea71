package recommend

import (
	"math"
	"slices"

	"github.com/darkkaiser/wcib-server/internal/service/catalog"
)

// MaxShells 예산의 상한입니다. 이 범위에서는 float64 예산과 int 합계가 정확합니다.
const MaxShells = 1e15

// Combination 선택된 상품과 수량입니다.
type Combination struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Select 예산 안에서 전략에 따라 상품을 탐욕적으로 고릅니다.
//
// 가격순으로 정렬한 뒤(같은 가격은 입력 순서 유지) 한 번 순회하면서 남은 예산에 맞는 상품을 담습니다.
// maxCount가 0 이하이면 개수 제한이 없습니다. 최적해를 보장하지 않습니다.
func Select(eligible []catalog.Product, budget float64, maxCount int, allowDuplicates bool, strategy Strategy) []Combination {
	selections := make([]Combination, 0)

	candidates := make([]catalog.Product, 0, len(eligible))
	for _, p := range eligible {
		if float64(p.Price) <= budget {
			candidates = append(candidates, p)
		}
	}

	if strategy == StrategyMostProducts {
		slices.SortStableFunc(candidates, func(a, b catalog.Product) int { return a.Price - b.Price })
	} else {
		slices.SortStableFunc(candidates, func(a, b catalog.Product) int { return b.Price - a.Price })
	}

	capped := maxCount > 0
	remaining := budget
	items := 0

	for _, p := range candidates {
		if capped && items >= maxCount {
			break
		}

		price := float64(p.Price)
		if price > remaining {
			continue
		}

		qty := 1
		if allowDuplicates {
			qty = int(min(math.Floor(remaining/price), MaxShells))
			if capped {
				qty = min(qty, maxCount-items)
			}
		}

		if qty > 0 {
			selections = append(selections, Combination{Product: p, Quantity: qty})
			remaining -= price * float64(qty)
			items += qty
		}

		if remaining == 0 || (capped && items >= maxCount) {
			break
		}
	}

	return selections
}
