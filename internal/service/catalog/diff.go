package catalog

// PriceChange 가격이 바뀐 상품과 이전 가격입니다.
type PriceChange struct {
	Product  Product
	OldPrice int
}

// Changes 두 스냅샷 사이의 상품 변경 내역입니다. 상품은 이름으로 식별하며 각 목록은 카탈로그 순서를 따릅니다.
type Changes struct {
	Added        []Product
	Removed      []Product
	PriceChanged []PriceChange
	SoldOut      []Product
	Restocked    []Product
}

// Empty 변경 사항이 하나도 없는지 확인합니다.
func (c *Changes) Empty() bool {
	return len(c.Added) == 0 &&
		len(c.Removed) == 0 &&
		len(c.PriceChanged) == 0 &&
		len(c.SoldOut) == 0 &&
		len(c.Restocked) == 0
}

// Diff prev에서 next로 바뀐 내용을 계산합니다. nil 스냅샷은 빈 카탈로그로 취급합니다.
func Diff(prev, next *Snapshot) Changes {
	var c Changes

	prevByName := indexByName(prev)
	nextByName := indexByName(next)

	for _, p := range next.productsOrNil() {
		old, ok := prevByName[p.Name]
		if !ok {
			c.Added = append(c.Added, p)
			continue
		}

		if old.Price != p.Price {
			c.PriceChanged = append(c.PriceChanged, PriceChange{Product: p, OldPrice: old.Price})
		}
		switch {
		case !old.OutOfStock && p.OutOfStock:
			c.SoldOut = append(c.SoldOut, p)
		case old.OutOfStock && !p.OutOfStock:
			c.Restocked = append(c.Restocked, p)
		}
	}

	for _, p := range prev.productsOrNil() {
		if _, ok := nextByName[p.Name]; !ok {
			c.Removed = append(c.Removed, p)
		}
	}

	return c
}

func indexByName(s *Snapshot) map[string]Product {
	products := s.productsOrNil()
	m := make(map[string]Product, len(products))
	for _, p := range products {
		m[p.Name] = p
	}
	return m
}

func (s *Snapshot) productsOrNil() []Product {
	if s == nil {
		return nil
	}
	return s.products
}
