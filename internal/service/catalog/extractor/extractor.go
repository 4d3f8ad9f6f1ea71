// Package extractor 상점 페이지 HTML에서 상품 목록을 추출합니다.
package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/darkkaiser/wcib-server/pkg/strutil"
)

const component = "catalog.extractor"

const (
	selCard        = ".card-with-gradient"
	selName        = "h3"
	selDescription = "p.text-gray-700"
	selPriceBadge  = ".absolute.top-2.right-2"
	selSoldOut     = ".text-red-600, .text-red-500"
	selAvailable   = ".text-orange-600, .text-orange-500, .text-green-600, .text-green-500"
	selForm        = "form[action]"

	minNameLength        = 2
	minDescriptionLength = 10
)

var (
	reDigits    = regexp.MustCompile(`\d+`)
	reBuyButton = regexp.MustCompile(`(?i)buy for\s+(\d+)\s+shells?`)
	reLeft      = regexp.MustCompile(`\d+\s+left`)

	imagePrefixes = []string{"/assets/", "https://summer.hackclub.com/rails/active_storage/"}

	// 상품 카드와 같은 스타일을 쓰는 섹션 제목
	sectionHeadings = map[string]struct{}{
		"🌍 choose your region": {},
		"🛍️ shop items":        {},
		"shop items":           {},
		"🏆 badge collection":   {},
	}
)

// Stats 추출 결과 통계
type Stats struct {
	Cards      int
	Extracted  int
	Invalid    int
	Duplicates int
	WithPrice  int
	OutOfStock int
}

func (s Stats) String() string {
	return fmt.Sprintf("cards=%d, extracted=%d, invalid=%d, duplicates=%d, with_price=%d, out_of_stock=%d",
		s.Cards, s.Extracted, s.Invalid, s.Duplicates, s.WithPrice, s.OutOfStock)
}

// Extract 문서의 상품 카드를 순서대로 읽어 상품 목록을 만듭니다.
// 이름이 같은 카드는 처음 나온 것만 사용하며, UID는 결과 순서대로 product-1부터 부여합니다.
func Extract(doc *goquery.Document) ([]catalog.Product, Stats) {
	var stats Stats

	products := make([]catalog.Product, 0)
	seen := make(map[string]struct{})

	doc.Find(selCard).Each(func(_ int, card *goquery.Selection) {
		stats.Cards++

		p, hasPrice, ok := parseCard(card)
		if !ok {
			stats.Invalid++
			return
		}
		if _, dup := seen[p.Name]; dup {
			stats.Duplicates++
			return
		}
		seen[p.Name] = struct{}{}

		if hasPrice {
			stats.WithPrice++
		}
		if p.OutOfStock {
			stats.OutOfStock++
		}

		p.UID = "product-" + strconv.Itoa(len(products)+1)
		products = append(products, p)
	})

	stats.Extracted = len(products)

	applog.WithComponentAndFields(component, applog.Fields{
		"cards":        stats.Cards,
		"extracted":    stats.Extracted,
		"invalid":      stats.Invalid,
		"duplicates":   stats.Duplicates,
		"with_price":   stats.WithPrice,
		"out_of_stock": stats.OutOfStock,
	}).Debug("상품 추출 완료")

	return products, stats
}

func parseCard(card *goquery.Selection) (catalog.Product, bool, bool) {
	name := strutil.NormalizeSpaces(card.Find(selName).First().Text())
	if len([]rune(name)) < minNameLength {
		return catalog.Product{}, false, false
	}
	if _, heading := sectionHeadings[strings.ToLower(name)]; heading {
		return catalog.Product{}, false, false
	}

	description := strutil.NormalizeSpaces(card.Find(selDescription).First().Text())
	price, hasPrice := parsePrice(card)
	images := parseImages(card)

	if !hasPrice && len([]rune(description)) <= minDescriptionLength && len(images) == 0 {
		return catalog.Product{}, false, false
	}

	p := catalog.Product{
		Name:        name,
		Description: description,
		Images:      images,
		Price:       price,
		OutOfStock:  isOutOfStock(card),
	}
	if action, ok := card.Find(selForm).First().Attr("action"); ok {
		p.Link = &action
	}

	return p, hasPrice, true
}

func parsePrice(card *goquery.Selection) (int, bool) {
	if m := reDigits.FindString(card.Find(selPriceBadge).First().Text()); m != "" {
		if v, err := strconv.Atoi(m); err == nil {
			return v, true
		}
	}

	price, found := 0, false
	card.Find("button").EachWithBreak(func(_ int, b *goquery.Selection) bool {
		text := strings.ToLower(b.Text())
		if !strings.Contains(text, "buy for") || !strings.Contains(text, "shell") {
			return true
		}
		if m := reBuyButton.FindStringSubmatch(text); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				price, found = v, true
				return false
			}
		}
		return true
	})

	return price, found
}

func parseImages(card *goquery.Selection) []string {
	images := make([]string, 0)
	card.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			src, ok = img.Attr("data-src")
		}
		if !ok || src == "" {
			return
		}
		if strings.Contains(src, "shell.") || strings.Contains(src, "/shell") {
			return
		}
		for _, prefix := range imagePrefixes {
			if strings.HasPrefix(src, prefix) {
				images = append(images, src)
				return
			}
		}
	})
	return images
}

// isOutOfStock 품절 표시가 있더라도 재고 수량 표시가 함께 있으면 판매 중으로 본다.
func isOutOfStock(card *goquery.Selection) bool {
	soldOut := false
	card.Find(selSoldOut).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(s.Text())
		soldOut = strings.Contains(text, "out of stock") || strings.Contains(text, "sold out")
		return !soldOut
	})
	if !soldOut {
		return false
	}

	available := false
	card.Find(selAvailable).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(s.Text())
		available = reLeft.MatchString(text) || strings.Contains(text, "in stock")
		return !available
	})

	return !available
}
