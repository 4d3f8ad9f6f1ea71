package recommend

import (
	"fmt"
	"testing"

	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pick struct {
	Name string
	Qty  int
}

func picks(selections []Combination) []pick {
	out := make([]pick, 0, len(selections))
	for _, s := range selections {
		out = append(out, pick{Name: s.Product.Name, Qty: s.Quantity})
	}
	return out
}

func priced(pairs ...any) []catalog.Product {
	var out []catalog.Product
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, catalog.Product{Name: pairs[i].(string), Price: pairs[i+1].(int)})
	}
	return out
}

func TestSelect(t *testing.T) {
	abc := priced("A", 100, "B", 50, "C", 20)
	p3 := priced("p10", 10, "p25", 25, "p40", 40)

	tests := []struct {
		name            string
		products        []catalog.Product
		budget          float64
		maxCount        int
		allowDuplicates bool
		strategy        Strategy
		want            []pick
	}{
		{
			name:     "most_valuable: 비싼 상품부터",
			products: abc, budget: 170, strategy: StrategyMostValuable,
			want: []pick{{"A", 1}, {"B", 1}, {"C", 1}},
		},
		{
			name:     "most_valuable: 남은 예산에 맞지 않으면 건너뜀",
			products: abc, budget: 130, strategy: StrategyMostValuable,
			want: []pick{{"A", 1}, {"C", 1}},
		},
		{
			name:     "most_products: 싼 상품부터",
			products: abc, budget: 75, strategy: StrategyMostProducts,
			want: []pick{{"C", 1}, {"B", 1}},
		},
		{
			name:     "most_products: 중복 허용",
			products: abc, budget: 75, allowDuplicates: true, strategy: StrategyMostProducts,
			want: []pick{{"C", 3}},
		},
		{
			name:     "most_valuable: 중복 허용",
			products: abc, budget: 270, allowDuplicates: true, strategy: StrategyMostValuable,
			want: []pick{{"A", 2}, {"B", 1}, {"C", 1}},
		},
		{
			name:     "개수 제한",
			products: abc, budget: 1000, maxCount: 2, strategy: StrategyMostProducts,
			want: []pick{{"C", 1}, {"B", 1}},
		},
		{
			name:     "개수 제한과 중복 허용",
			products: abc, budget: 1000, maxCount: 4, allowDuplicates: true, strategy: StrategyMostValuable,
			want: []pick{{"A", 4}},
		},
		{
			name:     "개수 제한과 중복 허용: 남은 개수만큼만",
			products: abc, budget: 230, maxCount: 4, allowDuplicates: true, strategy: StrategyMostValuable,
			want: []pick{{"A", 2}, {"C", 1}},
		},
		{
			name:     "예산을 모두 쓰면 중단",
			products: abc, budget: 100, strategy: StrategyMostValuable,
			want: []pick{{"A", 1}},
		},
		{
			name:     "소수점 예산",
			products: abc, budget: 40.5, allowDuplicates: true, strategy: StrategyMostProducts,
			want: []pick{{"C", 2}},
		},
		{
			name:     "같은 가격은 입력 순서 유지",
			products: priced("X", 10, "Y", 10, "Z", 10), budget: 20, strategy: StrategyMostValuable,
			want: []pick{{"X", 1}, {"Y", 1}},
		},
		{
			name:     "most_valuable: 40, 10 순으로 예산 50을 모두 사용",
			products: p3, budget: 50, strategy: StrategyMostValuable,
			want: []pick{{"p40", 1}, {"p10", 1}},
		},
		{
			name:     "most_products: 10, 25 순으로 담고 15가 남음",
			products: p3, budget: 50, strategy: StrategyMostProducts,
			want: []pick{{"p10", 1}, {"p25", 1}},
		},
		{
			name:     "중복 허용: 개수 제한 3에서 멈춤",
			products: priced("p", 10), budget: 35, maxCount: 3, allowDuplicates: true, strategy: StrategyMostProducts,
			want: []pick{{"p", 3}},
		},
		{
			name:     "중복 허용: 수량은 상한에서 잘림",
			products: priced("p", 1), budget: 1e19, allowDuplicates: true, strategy: StrategyMostProducts,
			want: []pick{{"p", int(MaxShells)}},
		},
		{
			name:     "중복 허용: 상한 예산은 정확히 사용",
			products: priced("p", 7), budget: MaxShells, allowDuplicates: true, strategy: StrategyMostValuable,
			want: []pick{{"p", int(MaxShells) / 7}},
		},
		{
			name:     "예산 0",
			products: abc, budget: 0, strategy: StrategyMostProducts,
			want: []pick{},
		},
		{
			name:     "빈 입력",
			products: nil, budget: 100, strategy: StrategyMostValuable,
			want: []pick{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.products, tt.budget, tt.maxCount, tt.allowDuplicates, tt.strategy)

			assert.NotNil(t, got)
			assert.Equal(t, tt.want, picks(got))
		})
	}
}

func TestSelect_Remaining(t *testing.T) {
	p3 := priced("p10", 10, "p25", 25, "p40", 40)

	tests := []struct {
		name            string
		products        []catalog.Product
		budget          float64
		maxCount        int
		allowDuplicates bool
		strategy        Strategy
		wantUsed        int
		wantRemaining   float64
	}{
		{name: "most_valuable", products: p3, budget: 50, strategy: StrategyMostValuable, wantUsed: 50, wantRemaining: 0},
		{name: "most_products", products: p3, budget: 50, strategy: StrategyMostProducts, wantUsed: 35, wantRemaining: 15},
		{name: "중복 허용과 개수 제한", products: priced("p", 10), budget: 35, maxCount: 3, allowDuplicates: true, strategy: StrategyMostProducts, wantUsed: 30, wantRemaining: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := Aggregate(Select(tt.products, tt.budget, tt.maxCount, tt.allowDuplicates, tt.strategy))

			assert.Equal(t, tt.wantUsed, totals.UsedShells)
			assert.Equal(t, tt.wantRemaining, tt.budget-float64(totals.UsedShells))
		})
	}
}

func TestSelect_Invariants(t *testing.T) {
	products := priced("Blahaj", 120, "Hoodie", 60, "Cap", 30, "Poster", 20, "Pin", 20, "Sticker", 5, "Button", 3)

	budgets := []float64{0, 2.5, 3, 19.9, 50, 77.7, 150, 333, 1000, 12345}
	maxCounts := []int{0, 1, 2, 5, 100}
	strategies := []Strategy{StrategyMostValuable, StrategyMostProducts}

	for _, budget := range budgets {
		for _, maxCount := range maxCounts {
			for _, allowDuplicates := range []bool{false, true} {
				for _, strategy := range strategies {
					got := Select(products, budget, maxCount, allowDuplicates, strategy)
					totals := Aggregate(got)

					msg := fmt.Sprintf("budget=%v maxCount=%d allowDuplicates=%v strategy=%s", budget, maxCount, allowDuplicates, strategy)

					require.LessOrEqual(t, float64(totals.UsedShells), budget, msg)
					if maxCount > 0 {
						require.LessOrEqual(t, totals.TotalProducts, maxCount, msg)
					}

					seen := make(map[string]struct{}, len(got))
					for _, c := range got {
						require.Positive(t, c.Quantity, msg)
						require.NotContains(t, seen, c.Product.Name, msg)
						seen[c.Product.Name] = struct{}{}
						if !allowDuplicates {
							require.Equal(t, 1, c.Quantity, msg)
						}
					}

					require.Equal(t, got, Select(products, budget, maxCount, allowDuplicates, strategy), msg)
				}
			}
		}
	}
}

func TestSelect_DoesNotReorderInput(t *testing.T) {
	products := priced("C", 20, "A", 100, "B", 50)

	_ = Select(products, 1000, 0, false, StrategyMostValuable)

	assert.Equal(t, []string{"C", "A", "B"}, names(products))
}

func TestAggregate(t *testing.T) {
	totals := Aggregate([]Combination{
		{Product: catalog.Product{Price: 100}, Quantity: 2},
		{Product: catalog.Product{Price: 20}, Quantity: 1},
	})

	assert.Equal(t, Totals{UsedShells: 220, TotalProducts: 3}, totals)
	assert.Equal(t, Totals{}, Aggregate(nil))
}
