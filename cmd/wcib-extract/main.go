// wcib-extract 상점 HTML 페이지에서 상품 카탈로그를 추출하여 JSON 파일로 저장하는 명령줄 도구입니다.
//
// 사용법:
//
//	wcib-extract -in shop.html -out products.json
//	wcib-extract -url https://summer.hackclub.com/shop -cookie "_session=..."
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PuerkitoBio/goquery"
	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/darkkaiser/wcib-server/internal/service/catalog/extractor"
	"github.com/darkkaiser/wcib-server/internal/service/catalog/fetcher"
)

const (
	defaultOutput  = "products.json"
	defaultTimeout = 30 * time.Second
	maxPageBytes   = 10 << 20
)

type options struct {
	in      string
	url     string
	out     string
	cookie  string
	retries int
	timeout time.Duration
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "wcib-extract: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("wcib-extract", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.in, "in", "", "상품을 추출할 HTML 파일 경로")
	fs.StringVar(&opts.url, "url", "", "상품을 추출할 상점 페이지 URL")
	fs.StringVar(&opts.out, "out", defaultOutput, "추출 결과를 저장할 JSON 파일 경로")
	fs.StringVar(&opts.cookie, "cookie", "", "상점 페이지 요청에 사용할 Cookie 헤더")
	fs.IntVar(&opts.retries, "retries", 2, "상점 페이지 요청 실패 시 재시도 횟수")
	fs.DurationVar(&opts.timeout, "timeout", defaultTimeout, "상점 페이지 요청 타임아웃")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if (opts.in == "") == (opts.url == "") {
		return nil, apperrors.New(apperrors.InvalidInput, "-in 또는 -url 중 하나만 지정해야 합니다")
	}
	if opts.out == "" {
		return nil, apperrors.New(apperrors.InvalidInput, "-out이 비어 있습니다")
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	doc, source, err := loadDocument(ctx, opts)
	if err != nil {
		return err
	}

	products, stats := extractor.Extract(doc)
	if len(products) == 0 {
		return apperrors.Wrapf(catalog.ErrEmptyExtraction, apperrors.ExecutionFailed, "%s (%s)", source, stats)
	}

	snapshot := catalog.NewSnapshot(products, source)
	if err := catalog.WriteFile(opts.out, snapshot); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: 상품 %d개 (구매 가능 %d개) -> %s\n", source, snapshot.Len(), snapshot.InStockCount(), opts.out)
	fmt.Fprintf(stdout, "  %s\n", stats)

	return nil
}

func loadDocument(ctx context.Context, opts *options) (*goquery.Document, string, error) {
	if opts.in != "" {
		f, err := os.Open(opts.in)
		if err != nil {
			return nil, "", apperrors.Wrapf(err, apperrors.NotFound, "HTML 파일을 열 수 없습니다: '%s'", opts.in)
		}
		defer f.Close()

		doc, err := fetcher.ParseHTML(f, "", opts.in)
		return doc, opts.in, err
	}

	f := fetcher.New(fetcher.Config{
		MaxRetries: opts.retries,
		RetryDelay: time.Second,
		Timeout:    opts.timeout,
		MaxBytes:   maxPageBytes,
	})

	var header map[string]string
	if opts.cookie != "" {
		header = map[string]string{"Cookie": opts.cookie}
	}

	doc, err := fetcher.FetchHTMLDocument(ctx, f, opts.url, header)
	return doc, opts.url, err
}
