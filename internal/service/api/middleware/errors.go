package middleware

import (
	"fmt"

	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	"github.com/darkkaiser/wcib-server/internal/service/api/constants"
	"github.com/darkkaiser/wcib-server/internal/service/api/httputil"
)

var (
	// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환하는 429 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

	// ErrUnsupportedMediaType 기대한 Content-Type이 아닐 때 반환하는 415 에러입니다.
	ErrUnsupportedMediaType = httputil.NewUnsupportedMediaTypeError(constants.ErrMsgUnsupportedMediaType)
)

// newErrPanicRecovered 복구된 패닉 값을 Internal 에러로 감쌉니다.
func newErrPanicRecovered(r any) error {
	if err, ok := r.(error); ok {
		return apperrors.Wrap(err, apperrors.Internal, "핸들러 실행 중 패닉 발생")
	}
	return apperrors.New(apperrors.Internal, fmt.Sprintf("핸들러 실행 중 패닉 발생: %v", r))
}
