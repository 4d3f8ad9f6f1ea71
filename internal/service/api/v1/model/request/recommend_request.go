// Package request v1 API의 요청 모델입니다.
package request

import (
	"github.com/darkkaiser/wcib-server/internal/service/recommend"
)

// RecommendRequest 구매 조합 추천 요청
type RecommendRequest struct {
	// 사용할 수 있는 조개(Shell) 수. 소수도 허용하며 recommend.MaxShells를 넘을 수 없습니다.
	Shells *float64 `json:"shells" validate:"required,gte=0,lte=1000000000000000" korean:"shells" example:"120"`
	// 선택 전략
	Strategy string `json:"strategy" validate:"required,oneof=most_valuable most_products" korean:"strategy" example:"most_valuable"`
	// 선택할 수 있는 최대 상품 수 (중복 선택 시 수량 합계 기준)
	MaxProducts *int `json:"maxProducts,omitempty" validate:"omitempty,min=1" korean:"maxProducts" example:"5"`
	// 제외할 상품명 (대소문자 무시)
	ExcludedProducts []string `json:"excludedProducts,omitempty" korean:"excludedProducts"`

	AllowDuplicates      bool `json:"allowDuplicates" example:"false"`
	ExcludeCredits       bool `json:"excludeCredits" example:"false"`
	ExcludeBadges        bool `json:"excludeBadges" example:"false"`
	ExcludeLotteryTicket bool `json:"excludeLotteryTicket" example:"false"`
}

// ToRecommendRequest 검증을 통과한 요청을 추천 엔진의 입력으로 변환합니다.
func (r *RecommendRequest) ToRecommendRequest() recommend.Request {
	var shells float64
	if r.Shells != nil {
		shells = *r.Shells
	}

	return recommend.Request{
		Shells:               shells,
		Strategy:             recommend.Strategy(r.Strategy),
		MaxProducts:          r.MaxProducts,
		ExcludedProducts:     r.ExcludedProducts,
		AllowDuplicates:      r.AllowDuplicates,
		ExcludeCredits:       r.ExcludeCredits,
		ExcludeBadges:        r.ExcludeBadges,
		ExcludeLotteryTicket: r.ExcludeLotteryTicket,
	}
}
