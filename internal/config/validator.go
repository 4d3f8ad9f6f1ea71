package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	"github.com/darkkaiser/wcib-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// 텔레그램 봇 토큰 형식 (예: 123456789:ABC-DEF1234ghIkl-zyx57W2v1u123ew11)
var telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

// validatorAdapter 설정 검증 전용 validator 입니다.
// 검증 실패를 설정 항목 이름(json 키)이 포함된 AppError로 변환합니다.
type validatorAdapter struct {
	v *validator.Validate
}

func newValidatorAdapter() *validatorAdapter {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	}); err != nil {
		panic(fmt.Sprintf("'cors_origin' 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("telegram_bot_token", func(fl validator.FieldLevel) bool {
		return telegramBotTokenRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("'telegram_bot_token' 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return &validatorAdapter{v: v}
}

// checkStruct 구조체를 검증하고 첫 번째 실패 항목을 설명하는 에러를 반환합니다.
func (a *validatorAdapter) checkStruct(s any, contextName string) error {
	err := a.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "file":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 파일을 찾을 수 없습니다: '%v'", contextName, fe.Field(), fe.Value()))
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	case "telegram_bot_token":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 봇 토큰(bot_token) 형식이 올바르지 않습니다", contextName))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fe.Field(), fe.Tag()))
}

// checkUniqueField 슬라이스 원소의 fieldName 값이 모두 다른지 검사합니다.
func (a *validatorAdapter) checkUniqueField(data any, fieldName, contextName string) error {
	if err := a.v.Var(data, "unique="+fieldName); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("중복된 %s ID가 존재합니다", contextName))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유일성 검증에 실패했습니다", contextName))
	}
	return nil
}
