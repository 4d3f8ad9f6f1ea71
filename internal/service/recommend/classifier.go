package recommend

import (
	"regexp"
	"strings"

	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/darkkaiser/wcib-server/pkg/strutil"
)

var (
	creditKeywords = []string{
		"credit", "credits", "voucher", "vouchers", "gift card", "giftcard",
		"digital currency", "store credit", "account credit", "balance",
		"top up", "reload", "prepaid", "$", "dollars", "bucks", "cash",
		"redeem", "coupon", "promo code", "promotional code", "subscription",
		"membership", "service", "grant",
	}

	// creditProviders 이름만으로는 판단하지 않고 "credit"이 함께 있을 때만 크레딧으로 본다.
	creditProviders = []string{
		"cloudflare", "bambu lab", "dbrand", "ikea", "keychron", "ifixit",
		"purelymail", "digikey", "lcsc", "framework", "mullvad", "amp",
	}

	reCreditAmount = regexp.MustCompile(`\$\d+.*credit|credit.*\$\d+|\d+.*credit|\d+.*voucher`)

	badgeNames = map[string]struct{}{
		"Spider":                       {},
		"Graphic design is my passion": {},
		"Summer of Making Blue":        {},
		"Pocket Watcher":               {},
		"Sunglasses":                   {},
		"Offshore Bank Account":        {},
		"Gold Verified":                {},
		"I am Rich":                    {},
	}
)

const lotteryTicketKeyword = "lottery ticket"

// IsCreditOrVoucher 이름과 설명으로 크레딧, 상품권, 구독 계열의 상품인지 판단합니다.
func IsCreditOrVoucher(p *catalog.Product) bool {
	text := strings.ToLower(p.Name + " " + p.Description)

	if strutil.ContainsAny(text, creditKeywords) {
		return true
	}
	if strings.Contains(text, "credit") && strutil.ContainsAny(text, creditProviders) {
		return true
	}
	return reCreditAmount.MatchString(text)
}

// IsBadge 대소문자를 구분하여 배지 상품 이름과 정확히 일치하는지 확인합니다.
func IsBadge(p *catalog.Product) bool {
	_, ok := badgeNames[p.Name]
	return ok
}

func IsLotteryTicket(p *catalog.Product) bool {
	return strings.Contains(strings.ToLower(p.Name), lotteryTicketKeyword) ||
		strings.Contains(strings.ToLower(p.Description), lotteryTicketKeyword)
}
