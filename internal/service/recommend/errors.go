package recommend

import (
	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
)

// ErrUnknownStrategy 검증을 거치지 않은 전략 값이 전달된 경우
var ErrUnknownStrategy = apperrors.New(apperrors.InvalidInput, "strategy는 'most_valuable' 또는 'most_products' 이어야 합니다")
