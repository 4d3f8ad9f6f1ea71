package maputil

import (
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string        `json:"name"`
	Price    int           `json:"price"`
	Enabled  bool          `json:"enabled"`
	Link     *string       `json:"link"`
	Interval time.Duration `json:"interval"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		opts    []Option
		want    *sample
		wantErr bool
	}{
		{
			name:  "성공: 유연한 타입 변환",
			input: map[string]any{"name": "Pin", "price": "12", "enabled": 1, "interval": "1m30s"},
			want:  &sample{Name: "Pin", Price: 12, Enabled: true, Interval: 90 * time.Second},
		},
		{
			name:  "성공: 정의되지 않은 필드 무시",
			input: map[string]any{"name": "Pin", "unknown": true},
			want:  &sample{Name: "Pin"},
		},
		{
			name:    "실패: ErrorUnused 옵션",
			input:   map[string]any{"name": "Pin", "unknown": true},
			opts:    []Option{WithErrorUnused(true)},
			wantErr: true,
		},
		{
			name:    "실패: 엄격한 타입 변환",
			input:   map[string]any{"price": "12"},
			opts:    []Option{WithWeaklyTypedInput(false)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode[sample](tt.input, tt.opts...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_NullablePointer(t *testing.T) {
	got, err := Decode[sample](map[string]any{"name": "A", "link": nil})
	require.NoError(t, err)
	assert.Nil(t, got.Link)

	got, err = Decode[sample](map[string]any{"name": "A", "link": "/shop/1"})
	require.NoError(t, err)
	require.NotNil(t, got.Link)
	assert.Equal(t, "/shop/1", *got.Link)
}

func TestDecode_Metadata(t *testing.T) {
	var md mapstructure.Metadata

	_, err := Decode[sample](map[string]any{"name": "A", "extra": 1}, WithMetadata(&md), WithTagName("json"))

	require.NoError(t, err)
	assert.Contains(t, md.Unused, "extra")
}

func TestDecodeTo_NilOutput(t *testing.T) {
	var out *sample
	assert.Error(t, DecodeTo(map[string]any{}, out))
}
