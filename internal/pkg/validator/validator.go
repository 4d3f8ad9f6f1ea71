// Package validator 요청 구조체 검증에 사용하는 전역 validator와 한글 에러 메시지 변환을 제공합니다.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Get 전역 validator 인스턴스를 반환합니다.
// 필드명은 korean 태그, json 태그, 구조체 필드명 순으로 결정됩니다.
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("korean"); name != "" {
				return name
			}
			if name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]; name != "" && name != "-" {
				return name
			}
			return fld.Name
		})
	})

	return instance
}

// Struct s의 validate 태그를 기준으로 검증합니다.
func Struct(s any) error {
	return Get().Struct(s)
}

// FormatValidationError 검증 에러를 사용자에게 보여줄 한글 메시지로 변환합니다.
// 여러 필드가 실패한 경우 첫 번째 에러만 변환합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}

	return formatFieldError(fieldErrs[0])
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", field)
	case "min":
		if isString {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", field, fe.Param())
		}
		return fmt.Sprintf("%s는 최소 %s 이상이어야 합니다", field, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", field, fe.Param())
		}
		return fmt.Sprintf("%s는 최대 %s까지 입력 가능합니다", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s는 %s 이상이어야 합니다", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s는 %s 이하여야 합니다", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s는 다음 중 하나여야 합니다: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s 검증 실패: %s", field, fe.Tag())
	}
}
