package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	"github.com/darkkaiser/wcib-server/pkg/cronx"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션 식별자입니다. 로그 파일명과 기본 설정 파일명에 사용됩니다.
	AppName string = "wcib-server"

	// DefaultFilename 실행 인자로 설정 파일이 지정되지 않았을 때 사용하는 파일명입니다.
	DefaultFilename = AppName + ".json"

	// envPrefix 환경 변수 오버라이드 접두사입니다.
	// 예: WCIB_API__WS__LISTEN_PORT=8080 -> api.ws.listen_port
	envPrefix = "WCIB_"

	DefaultMaxRetries = 3
	DefaultRetryDelay = 2 * time.Second

	// DefaultCatalogEnvVar 카탈로그 JSON을 담는 기본 환경 변수 이름입니다.
	DefaultCatalogEnvVar = "DATA"
)

// 카탈로그 소스 종류
const (
	CatalogSourceFile = "file"
	CatalogSourceEnv  = "env"
)

// AppConfig 애플리케이션 설정의 최상위 구조체입니다.
type AppConfig struct {
	Debug     bool            `json:"debug"`
	HTTPRetry HTTPRetryConfig `json:"http_retry"`
	Catalog   CatalogConfig   `json:"catalog"`
	Notifiers NotifierConfig  `json:"notifiers"`
	API       APIConfig       `json:"api"`
}

func (c *AppConfig) validate(v *validatorAdapter) error {
	if err := v.checkStruct(c.HTTPRetry, "HTTP 재시도(http_retry)"); err != nil {
		return err
	}

	if err := c.Catalog.validate(v); err != nil {
		return err
	}

	notifierIDs, err := c.Notifiers.validate(v)
	if err != nil {
		return err
	}

	if c.Catalog.Refresh.NotifierID != "" && !slices.Contains(notifierIDs, c.Catalog.Refresh.NotifierID) {
		return apperrors.New(apperrors.NotFound, fmt.Sprintf("카탈로그 갱신(catalog.refresh)에서 참조하는 NotifierID('%s')가 정의되지 않았습니다", c.Catalog.Refresh.NotifierID))
	}

	return c.API.validate(v)
}

// VerifyRecommendations 강제는 아니지만 운영상 권장되지 않는 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.API.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.API.WS.ListenPort))
	}
	if slices.Contains(c.API.CORS.AllowOrigins, "*") {
		warnings = append(warnings, "CORS 허용 도메인이 와일드카드(*)로 설정되었습니다. 운영 환경에서는 명시적인 도메인 사용을 권장합니다")
	}
	if c.Catalog.Refresh.Enabled && len(c.Notifiers.Telegrams) == 0 {
		warnings = append(warnings, "카탈로그 자동 갱신이 활성화되었지만 알림 채널이 없어 갱신 실패를 통보받을 수 없습니다")
	}

	return warnings
}

// HTTPRetryConfig 외부 HTTP 요청 실패 시 재시도 정책입니다.
type HTTPRetryConfig struct {
	MaxRetries int           `json:"max_retries" validate:"min=0,max=10"`
	RetryDelay time.Duration `json:"retry_delay" validate:"min=0"`
}

// CatalogConfig 상품 카탈로그를 읽어올 위치와 자동 갱신 정책입니다.
type CatalogConfig struct {
	Source   string               `json:"source" validate:"oneof=file env"`
	File     string               `json:"file" validate:"required_if=Source file"`
	EnvVar   string               `json:"env_var" validate:"required_if=Source env"`
	JSONPath string               `json:"json_path"` // JSON 문서 안에서 상품 배열의 경로 (gjson 문법, 빈 값: 루트)
	DataDir  string               `json:"data_dir" validate:"required"`
	Refresh  CatalogRefreshConfig `json:"refresh" validate:"-"`
}

func (c *CatalogConfig) validate(v *validatorAdapter) error {
	if err := v.checkStruct(c, "카탈로그(catalog)"); err != nil {
		return err
	}

	if c.Refresh.Enabled {
		if err := v.checkStruct(c.Refresh, "카탈로그 갱신(catalog.refresh)"); err != nil {
			return err
		}
		if err := cronx.Validate(c.Refresh.TimeSpec); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, "카탈로그 갱신 스케줄(catalog.refresh.time_spec) 설정이 유효하지 않습니다")
		}
	}

	return nil
}

// CatalogRefreshConfig 상점 페이지를 주기적으로 다시 읽어 카탈로그를 교체하는 작업 설정입니다.
type CatalogRefreshConfig struct {
	Enabled    bool              `json:"enabled"`
	ID         string            `json:"id" validate:"required"`
	URL        string            `json:"url" validate:"required,url"`
	TimeSpec   string            `json:"time_spec" validate:"required"`
	RunOnStart bool              `json:"run_on_start"`
	Headers    map[string]string `json:"headers"`
	NotifierID string            `json:"notifier_id"` // 빈 값: 기본 Notifier

	// NotifyChanges 갱신 결과 상품 추가, 가격 변경, 품절 등이 있으면 알림을 보낼지 여부
	NotifyChanges bool `json:"notify_changes"`
}

// NotifierConfig 운영 알림 채널 설정입니다. 채널이 하나도 없으면 알림은 로그로만 남습니다.
type NotifierConfig struct {
	DefaultNotifierID string           `json:"default_notifier_id"`
	Telegrams         []TelegramConfig `json:"telegrams"`
}

func (c *NotifierConfig) validate(v *validatorAdapter) ([]string, error) {
	if err := v.checkUniqueField(c.Telegrams, "ID", "Notifier"); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(c.Telegrams))
	for _, t := range c.Telegrams {
		if err := v.checkStruct(t, fmt.Sprintf("Telegram Notifier['%s']", t.ID)); err != nil {
			return nil, err
		}
		ids = append(ids, t.ID)
	}

	if len(ids) > 0 && !slices.Contains(ids, c.DefaultNotifierID) {
		return nil, apperrors.New(apperrors.NotFound, fmt.Sprintf("기본 NotifierID('%s')가 정의된 Notifier 목록에 존재하지 않습니다", c.DefaultNotifierID))
	}

	return ids, nil
}

// TelegramConfig 텔레그램 봇 토큰과 채팅 ID입니다.
type TelegramConfig struct {
	ID       string `json:"id" validate:"required"`
	BotToken string `json:"bot_token" validate:"required,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required"`
}

// APIConfig REST API 서버 설정입니다.
type APIConfig struct {
	WS        WSConfig        `json:"ws"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

func (c *APIConfig) validate(v *validatorAdapter) error {
	if err := v.checkStruct(c.WS, "웹 서버(api.ws)"); err != nil {
		return err
	}

	if len(c.CORS.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	if slices.Contains(c.CORS.AllowOrigins, "*") && len(c.CORS.AllowOrigins) > 1 {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다")
	}
	if err := v.checkStruct(c.CORS, "CORS(api.cors)"); err != nil {
		return err
	}

	return v.checkStruct(c.RateLimit, "요청 제한(api.rate_limit)")
}

// WSConfig 웹 서버 포트와 TLS 설정입니다.
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

// CORSConfig 브라우저 교차 출처 요청 허용 목록입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

// RateLimitConfig 클라이언트 IP별 요청 제한입니다.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gt=0"`
	Burst             int     `json:"burst" validate:"min=1"`
}

// newDefaultConfig 설정 파일과 환경 변수가 덮어쓰기 전의 기본 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		HTTPRetry: HTTPRetryConfig{
			MaxRetries: DefaultMaxRetries,
			RetryDelay: DefaultRetryDelay,
		},
		Catalog: CatalogConfig{
			Source:  CatalogSourceEnv,
			EnvVar:  DefaultCatalogEnvVar,
			DataDir: "data",
			Refresh: CatalogRefreshConfig{
				ID:       "shop",
				TimeSpec: "0 0 */6 * * *",
			},
		},
		API: APIConfig{
			WS: WSConfig{
				ListenPort: 2443,
			},
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 20,
				Burst:             40,
			},
		},
	}
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
// 예: WCIB_HTTP_RETRY__MAX_RETRIES -> http_retry.max_retries
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 기본값, 설정 파일, 환경 변수 순으로 병합한 뒤 검증한 설정을 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	if err := k.Load(env.Provider(envPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &appConfig,
			ErrorUnused:      true, // 구조체에 없는 키는 오타로 간주한다.
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidatorAdapter()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
