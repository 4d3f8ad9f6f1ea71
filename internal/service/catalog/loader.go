package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/darkkaiser/wcib-server/internal/config"
	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	"github.com/darkkaiser/wcib-server/pkg/maputil"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Loader 카탈로그 스냅샷을 읽어오는 출처입니다.
type Loader interface {
	Load() (*Snapshot, error)
}

// NewLoader 설정된 소스 종류에 맞는 Loader를 생성합니다.
func NewLoader(cfg config.CatalogConfig) (Loader, error) {
	switch cfg.Source {
	case config.CatalogSourceFile:
		return &FileLoader{Path: cfg.File, JSONPath: cfg.JSONPath}, nil
	case config.CatalogSourceEnv:
		return &EnvLoader{Name: cfg.EnvVar, JSONPath: cfg.JSONPath, lookup: os.LookupEnv}, nil
	default:
		return nil, apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 카탈로그 소스입니다: '%s'", cfg.Source)
	}
}

// FileLoader JSON 또는 YAML 파일에서 카탈로그를 읽습니다.
// 확장자가 .yaml/.yml 이면 YAML로, 그 외에는 JSON으로 해석합니다.
type FileLoader struct {
	Path     string
	JSONPath string
}

func (l *FileLoader) Load() (*Snapshot, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrapf(err, apperrors.NotFound, "카탈로그 파일을 찾을 수 없습니다: '%s'", l.Path)
		}
		return nil, apperrors.Wrapf(err, apperrors.System, "카탈로그 파일을 읽을 수 없습니다: '%s'", l.Path)
	}

	var products []Product
	switch strings.ToLower(filepath.Ext(l.Path)) {
	case ".yaml", ".yml":
		products, err = DecodeYAML(data)
	default:
		products, err = DecodeJSON(data, l.JSONPath)
	}
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "카탈로그 파일('%s')을 해석할 수 없습니다", l.Path)
	}

	return NewSnapshot(products, l.Path), nil
}

// EnvLoader 환경 변수에 담긴 JSON 문서에서 카탈로그를 읽습니다.
// 환경 변수가 없거나 비어 있으면 경고를 남기고 빈 카탈로그를 반환합니다.
type EnvLoader struct {
	Name     string
	JSONPath string

	lookup func(string) (string, bool)
}

func (l *EnvLoader) Load() (*Snapshot, error) {
	lookup := l.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	source := "env:" + l.Name

	raw, ok := lookup(l.Name)
	if !ok || strings.TrimSpace(raw) == "" {
		applog.WithComponentAndFields(component, applog.Fields{
			"env_var": l.Name,
		}).Warn("카탈로그 환경 변수가 설정되지 않아 빈 카탈로그로 시작합니다")

		return emptySnapshot(source), nil
	}

	products, err := DecodeJSON([]byte(raw), l.JSONPath)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "환경 변수(%s)의 카탈로그를 해석할 수 없습니다", l.Name)
	}

	return NewSnapshot(products, source), nil
}

// DecodeJSON JSON 문서에서 상품 배열을 읽습니다. path가 비어 있지 않으면 gjson 경로로 배열 위치를 지정합니다.
func DecodeJSON(data []byte, path string) ([]Product, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperrors.New(apperrors.ParsingFailed, "카탈로그 JSON 형식이 올바르지 않습니다")
	}

	result := gjson.ParseBytes(data)
	if path != "" {
		result = result.Get(path)
	}
	if !result.IsArray() {
		return nil, ErrNotArray
	}

	var records []any
	result.ForEach(func(_, value gjson.Result) bool {
		records = append(records, value.Value())
		return true
	})

	return decodeRecords(records)
}

// DecodeYAML YAML 문서의 최상위 시퀀스에서 상품 배열을 읽습니다.
func DecodeYAML(data []byte) ([]Product, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "카탈로그 YAML 형식이 올바르지 않습니다")
	}

	records, ok := doc.([]any)
	if !ok {
		return nil, ErrNotArray
	}

	return decodeRecords(records)
}

// decodeRecords 레코드를 Product로 변환합니다.
// 이름이 없는 레코드는 경고 후 제외하고, uid가 없는 레코드에는 순번 기반 uid를 부여합니다.
func decodeRecords(records []any) ([]Product, error) {
	products := make([]Product, 0, len(records))

	for i, rec := range records {
		if _, ok := rec.(map[string]any); !ok {
			return nil, apperrors.Newf(apperrors.ParsingFailed, "%d번째 상품 레코드가 객체가 아닙니다", i+1)
		}

		p, err := maputil.Decode[Product](rec)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "%d번째 상품 레코드를 변환할 수 없습니다", i+1)
		}

		if strings.TrimSpace(p.Name) == "" {
			applog.WithComponentAndFields(component, applog.Fields{
				"index": i,
				"uid":   p.UID,
			}).Warn("이름이 없는 상품 레코드를 제외합니다")
			continue
		}
		if p.UID == "" {
			p.UID = fmt.Sprintf("product-%d", i+1)
		}

		products = append(products, *p)
	}

	return products, nil
}
