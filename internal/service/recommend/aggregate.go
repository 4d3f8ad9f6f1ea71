package recommend

// Totals 선택 결과의 합계입니다.
type Totals struct {
	UsedShells    int
	TotalProducts int
}

func Aggregate(selections []Combination) Totals {
	var t Totals
	for _, s := range selections {
		t.UsedShells += s.Product.Price * s.Quantity
		t.TotalProducts += s.Quantity
	}
	return t
}
