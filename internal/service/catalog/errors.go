package catalog

import (
	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
)

// component 카탈로그 서비스 로깅용 컴포넌트 이름
const component = "catalog"

var (
	// ErrNotArray 카탈로그 문서의 최상위(또는 지정 경로) 값이 배열이 아닐 때 반환됩니다.
	ErrNotArray = apperrors.New(apperrors.ParsingFailed, "카탈로그 데이터는 상품 배열이어야 합니다")

	// ErrEmptyExtraction 상점 페이지에서 상품을 하나도 추출하지 못했을 때 반환됩니다.
	ErrEmptyExtraction = apperrors.New(apperrors.ExecutionFailed, "상점 페이지에서 추출된 상품이 없습니다")
)
