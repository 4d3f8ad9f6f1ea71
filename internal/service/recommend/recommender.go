package recommend

import (
	"github.com/darkkaiser/wcib-server/internal/service/catalog"
)

// MessageNoProducts 필터 적용 후 예산 안에서 구매 가능한 상품이 없을 때의 안내 메시지
const MessageNoProducts = "No products available for purchase with current filters."

// Request 추천 요청입니다. 값의 유효성은 호출 전에 검증되어 있어야 합니다.
type Request struct {
	Shells               float64
	Strategy             Strategy
	MaxProducts          *int
	ExcludedProducts     []string
	AllowDuplicates      bool
	ExcludeCredits       bool
	ExcludeBadges        bool
	ExcludeLotteryTicket bool
}

// Result 추천 결과입니다. 요청 옵션을 받은 그대로 함께 돌려줍니다.
type Result struct {
	TotalShells          float64       `json:"totalShells"`
	UsedShells           int           `json:"usedShells"`
	RemainingShells      float64       `json:"remainingShells"`
	Products             []Combination `json:"products"`
	TotalProducts        int           `json:"totalProducts"`
	Strategy             Strategy      `json:"strategy"`
	MaxProducts          *int          `json:"maxProducts,omitempty"`
	ExcludedProducts     []string      `json:"excludedProducts,omitempty"`
	AllowDuplicates      bool          `json:"allowDuplicates"`
	ExcludeCredits       bool          `json:"excludeCredits"`
	ExcludeBadges        bool          `json:"excludeBadges"`
	ExcludeLotteryTicket bool          `json:"excludeLotteryTicket"`
	Message              string        `json:"message,omitempty"`
}

// Recommender 요청마다 카탈로그의 현재 스냅샷 하나만 사용합니다.
type Recommender struct {
	store *catalog.Store
}

func NewRecommender(store *catalog.Store) *Recommender {
	if store == nil {
		panic("catalog.Store는 필수입니다")
	}
	return &Recommender{store: store}
}

// Recommend Filter, Select, Aggregate 순서로 실행하여 결과를 만듭니다.
func (r *Recommender) Recommend(req Request) (*Result, error) {
	if !req.Strategy.Valid() {
		return nil, ErrUnknownStrategy
	}

	snapshot := r.store.Current()

	result := &Result{
		TotalShells:          req.Shells,
		RemainingShells:      req.Shells,
		Products:             []Combination{},
		Strategy:             req.Strategy,
		MaxProducts:          req.MaxProducts,
		ExcludedProducts:     req.ExcludedProducts,
		AllowDuplicates:      req.AllowDuplicates,
		ExcludeCredits:       req.ExcludeCredits,
		ExcludeBadges:        req.ExcludeBadges,
		ExcludeLotteryTicket: req.ExcludeLotteryTicket,
	}

	eligible := Filter(snapshot.Products(), FilterOptions{
		ExcludeCredits:       req.ExcludeCredits,
		ExcludeBadges:        req.ExcludeBadges,
		ExcludeLotteryTicket: req.ExcludeLotteryTicket,
		ExcludedNames:        req.ExcludedProducts,
	})
	if !anyAffordable(eligible, req.Shells) {
		result.Message = MessageNoProducts
		return result, nil
	}

	maxCount := 0
	if req.MaxProducts != nil {
		maxCount = *req.MaxProducts
	}

	selections := Select(eligible, req.Shells, maxCount, req.AllowDuplicates, req.Strategy)
	totals := Aggregate(selections)

	result.Products = selections
	result.UsedShells = totals.UsedShells
	result.TotalProducts = totals.TotalProducts
	result.RemainingShells = req.Shells - float64(totals.UsedShells)

	return result, nil
}

func anyAffordable(products []catalog.Product, budget float64) bool {
	for _, p := range products {
		if float64(p.Price) <= budget {
			return true
		}
	}
	return false
}
