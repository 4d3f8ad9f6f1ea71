package recommend

import (
	"testing"

	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/stretchr/testify/assert"
)

func TestIsCreditOrVoucher(t *testing.T) {
	tests := []struct {
		name        string
		product     catalog.Product
		want        bool
	}{
		{name: "키워드: credit", product: catalog.Product{Name: "Cloud Credit"}, want: true},
		{name: "키워드: 설명의 gift card", product: catalog.Product{Name: "Steam", Description: "A Gift Card for games"}, want: true},
		{name: "키워드: $ 기호", product: catalog.Product{Name: "$5 off"}, want: true},
		{name: "키워드: service", product: catalog.Product{Name: "Hosting", Description: "One year of service"}, want: true},
		{name: "키워드: 단어 일부도 포함", product: catalog.Product{Name: "Grants Pass Map"}, want: true},
		{name: "금액 패턴: 숫자와 voucher", product: catalog.Product{Name: "10 euro VOUCHER"}, want: true},
		{name: "일반 상품", product: catalog.Product{Name: "Blahaj", Description: "A cuddly shark"}, want: false},
		{name: "제공자 이름만 있음", product: catalog.Product{Name: "Framework Laptop", Description: "DIY edition"}, want: false},
		{name: "amp 포함 단어", product: catalog.Product{Name: "Lamp", Description: "Desk light"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCreditOrVoucher(&tt.product))
		})
	}
}

func TestIsBadge(t *testing.T) {
	assert.True(t, IsBadge(&catalog.Product{Name: "Gold Verified"}))
	assert.True(t, IsBadge(&catalog.Product{Name: "I am Rich"}))
	assert.False(t, IsBadge(&catalog.Product{Name: "gold verified"}), "대소문자를 구분해야 합니다")
	assert.False(t, IsBadge(&catalog.Product{Name: "Spider Plush"}))
}

func TestIsLotteryTicket(t *testing.T) {
	assert.True(t, IsLotteryTicket(&catalog.Product{Name: "Lottery Ticket"}))
	assert.True(t, IsLotteryTicket(&catalog.Product{Name: "Mystery", Description: "A LOTTERY TICKET for prizes"}))
	assert.False(t, IsLotteryTicket(&catalog.Product{Name: "Lottery", Description: "ticket"}))
}
