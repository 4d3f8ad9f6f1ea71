// Package recommend 예산(shells) 안에서 구매할 상품 조합을 추천합니다.
package recommend

// Strategy 상품 선택 방향
type Strategy string

const (
	// StrategyMostValuable 비싼 상품부터 담습니다.
	StrategyMostValuable Strategy = "most_valuable"

	// StrategyMostProducts 싼 상품부터 담아 개수를 최대화합니다.
	StrategyMostProducts Strategy = "most_products"
)

func (s Strategy) Valid() bool {
	return s == StrategyMostValuable || s == StrategyMostProducts
}

func (s Strategy) String() string {
	return string(s)
}
