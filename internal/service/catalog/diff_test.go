package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestDiff(t *testing.T) {
	prev := NewSnapshot([]Product{
		{Name: "Hoodie", Price: 60},
		{Name: "Sticker", Price: 5},
		{Name: "Cap", Price: 30, OutOfStock: true},
		{Name: "Poster", Price: 20},
	}, "prev")
	next := NewSnapshot([]Product{
		{Name: "Hoodie", Price: 55},
		{Name: "Sticker", Price: 5, OutOfStock: true},
		{Name: "Cap", Price: 30},
		{Name: "Blahaj", Price: 120},
	}, "next")

	c := Diff(prev, next)

	assert.False(t, c.Empty())
	assert.Equal(t, []string{"Blahaj"}, names(c.Added))
	assert.Equal(t, []string{"Poster"}, names(c.Removed))
	assert.Equal(t, []string{"Sticker"}, names(c.SoldOut))
	assert.Equal(t, []string{"Cap"}, names(c.Restocked))
	assert.Equal(t, []PriceChange{{Product: next.Products()[0], OldPrice: 60}}, c.PriceChanged)
}

func TestDiff_Edges(t *testing.T) {
	s := NewSnapshot([]Product{{Name: "Hoodie", Price: 60}}, "s")

	tests := []struct {
		name        string
		prev, next  *Snapshot
		wantEmpty   bool
		wantAdded   int
		wantRemoved int
	}{
		{name: "성공: 동일한 스냅샷", prev: s, next: s, wantEmpty: true},
		{name: "성공: 이전 스냅샷 없음", prev: nil, next: s, wantAdded: 1},
		{name: "성공: 다음 스냅샷 없음", prev: s, next: nil, wantRemoved: 1},
		{name: "성공: 둘 다 없음", prev: nil, next: nil, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Diff(tt.prev, tt.next)

			assert.Equal(t, tt.wantEmpty, c.Empty())
			assert.Len(t, c.Added, tt.wantAdded)
			assert.Len(t, c.Removed, tt.wantRemoved)
		})
	}
}
