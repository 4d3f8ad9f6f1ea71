package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopHTML = `<html><body>
<div class="card-with-gradient"><h3>Shop Items</h3></div>
<div class="card-with-gradient">
  <h3>Blahaj Plush</h3>
  <p class="text-gray-700">A large cuddly shark</p>
  <span class="absolute top-2 right-2">120</span>
</div>
<div class="card-with-gradient">
  <h3>Sticker</h3>
  <span class="absolute top-2 right-2">5</span>
  <span class="text-red-500">Sold out</span>
</div>
</body></html>`

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr bool
	}{
		{name: "성공: 파일 입력, 기본 출력", args: []string{"-in", "shop.html"}, wantOut: defaultOutput},
		{name: "성공: URL 입력", args: []string{"-url", "https://shop", "-out", "x.json"}, wantOut: "x.json"},
		{name: "실패: 입력 없음", args: nil, wantErr: true},
		{name: "실패: 입력 두 개", args: []string{"-in", "a.html", "-url", "https://shop"}, wantErr: true},
		{name: "실패: 빈 출력 경로", args: []string{"-in", "a.html", "-out", ""}, wantErr: true},
		{name: "실패: 알 수 없는 플래그", args: []string{"-in", "a.html", "-verbose"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, opts.out)
		})
	}
}

func TestRun_File(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "shop.html")
	out := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(in, []byte(shopHTML), 0644))

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-in", in, "-out", out}, &stdout))

	assert.Contains(t, stdout.String(), "상품 2개 (구매 가능 1개)")

	s, err := (&catalog.FileLoader{Path: out}).Load()
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "Blahaj Plush", s.Products()[0].Name)
	assert.Equal(t, 120, s.Products()[0].Price)
	assert.True(t, s.Products()[1].OutOfStock)
}

func TestRun_URL(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(shopHTML))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "products.json")

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-url", srv.URL, "-out", out, "-cookie", "_session=abc", "-retries", "0"}, &stdout))

	assert.Equal(t, "_session=abc", gotCookie)
	assert.FileExists(t, out)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.html")
	require.NoError(t, os.WriteFile(empty, []byte(`<html><body><p>maintenance</p></body></html>`), 0644))

	tests := []struct {
		name     string
		args     []string
		wantType apperrors.ErrorType
	}{
		{name: "실패: 입력 파일 없음", args: []string{"-in", filepath.Join(dir, "missing.html")}, wantType: apperrors.NotFound},
		{name: "실패: 상품 없음", args: []string{"-in", empty, "-out", filepath.Join(dir, "out.json")}, wantType: apperrors.ExecutionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.wantType), err.Error())
		})
	}

	assert.NoFileExists(t, filepath.Join(dir, "out.json"))
}
