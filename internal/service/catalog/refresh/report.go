package refresh

import (
	"fmt"
	"html"
	"strings"

	"github.com/darkkaiser/wcib-server/internal/pkg/mark"
	"github.com/darkkaiser/wcib-server/internal/service/catalog"
)

// maxReportItems 항목별로 나열할 최대 상품 수. 나머지는 개수만 표시한다.
const maxReportItems = 10

// formatChanges 카탈로그 변경 내역을 알림 메시지로 만듭니다.
// 메시지는 HTML 모드로 발송되므로 상품명은 이스케이프합니다.
func formatChanges(id string, c catalog.Changes) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "카탈로그(%s)가 변경되었습니다.", html.EscapeString(id))

	writeSection(&sb, mark.New, "신규 상품", c.Added, func(p catalog.Product) string {
		return fmt.Sprintf("%s (%d%s)", html.EscapeString(p.Name), p.Price, mark.Shell.WithSpace())
	})
	writeSection(&sb, mark.Modified, "가격 변경", c.PriceChanged, func(pc catalog.PriceChange) string {
		return fmt.Sprintf("%s (%d → %d%s)", html.EscapeString(pc.Product.Name), pc.OldPrice, pc.Product.Price, mark.Shell.WithSpace())
	})
	writeSection(&sb, mark.Unavailable, "품절", c.SoldOut, productName)
	writeSection(&sb, mark.Restocked, "재입고", c.Restocked, productName)
	writeSection(&sb, mark.Removed, "판매 종료", c.Removed, productName)

	return sb.String()
}

func productName(p catalog.Product) string {
	return html.EscapeString(p.Name)
}

func writeSection[T any](sb *strings.Builder, m mark.Mark, heading string, items []T, format func(T) string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(sb, "\n\n%s %s %d개", m, heading, len(items))
	for i, item := range items {
		if i == maxReportItems {
			fmt.Fprintf(sb, "\n  … 외 %d개", len(items)-maxReportItems)
			break
		}
		sb.WriteString("\n  • ")
		sb.WriteString(format(item))
	}
}
