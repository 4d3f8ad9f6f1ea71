package refresh

import (
	"fmt"
	"strings"
	"testing"

	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/stretchr/testify/assert"
)

func TestFormatChanges(t *testing.T) {
	c := catalog.Changes{
		Added:        []catalog.Product{{Name: "Blahaj <XL>", Price: 120}},
		PriceChanged: []catalog.PriceChange{{Product: catalog.Product{Name: "Hoodie", Price: 55}, OldPrice: 60}},
		SoldOut:      []catalog.Product{{Name: "Sticker"}},
		Removed:      []catalog.Product{{Name: "Poster"}},
	}

	got := formatChanges("SummerShop", c)

	assert.True(t, strings.HasPrefix(got, "카탈로그(SummerShop)가 변경되었습니다."))
	assert.Contains(t, got, "🆕 신규 상품 1개\n  • Blahaj &lt;XL&gt; (120 🐚)")
	assert.Contains(t, got, "🔁 가격 변경 1개\n  • Hoodie (60 → 55 🐚)")
	assert.Contains(t, got, "🚫 품절 1개\n  • Sticker")
	assert.Contains(t, got, "🗑️ 판매 종료 1개\n  • Poster")
	assert.NotContains(t, got, "재입고", "빈 항목은 생략")
}

func TestFormatChanges_Truncate(t *testing.T) {
	var added []catalog.Product
	for i := range maxReportItems + 3 {
		added = append(added, catalog.Product{Name: fmt.Sprintf("Item %d", i), Price: i + 1})
	}

	got := formatChanges("SummerShop", catalog.Changes{Added: added})

	assert.Equal(t, maxReportItems, strings.Count(got, "  • "))
	assert.Contains(t, got, "… 외 3개")
	assert.Contains(t, got, fmt.Sprintf("신규 상품 %d개", maxReportItems+3))
}
