package recommend

import (
	"strings"

	"github.com/darkkaiser/wcib-server/internal/service/catalog"
)

// FilterOptions 요청에 따라 켜고 끌 수 있는 제외 조건입니다.
type FilterOptions struct {
	ExcludeCredits       bool
	ExcludeBadges        bool
	ExcludeLotteryTicket bool

	// ExcludedNames 제외할 상품 이름. 앞뒤 공백을 제거하고 대소문자 구분 없이 비교합니다.
	ExcludedNames []string
}

// Filter 구매 가능한 상품 중 모든 제외 조건을 통과한 상품만 원래 순서대로 반환합니다.
// 품절 상품과 가격이 0 이하인 상품은 옵션과 관계없이 항상 제외됩니다.
func Filter(products []catalog.Product, opts FilterOptions) []catalog.Product {
	var excluded map[string]struct{}
	if len(opts.ExcludedNames) > 0 {
		excluded = make(map[string]struct{}, len(opts.ExcludedNames))
		for _, name := range opts.ExcludedNames {
			excluded[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
		}
	}

	eligible := make([]catalog.Product, 0, len(products))
	for i := range products {
		p := &products[i]

		if !p.Purchasable() {
			continue
		}
		if opts.ExcludeCredits && IsCreditOrVoucher(p) {
			continue
		}
		if opts.ExcludeBadges && IsBadge(p) {
			continue
		}
		if opts.ExcludeLotteryTicket && IsLotteryTicket(p) {
			continue
		}
		if excluded != nil {
			if _, ok := excluded[strings.ToLower(p.Name)]; ok {
				continue
			}
		}

		eligible = append(eligible, *p)
	}

	return eligible
}
