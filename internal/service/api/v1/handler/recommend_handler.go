package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	"github.com/darkkaiser/wcib-server/internal/pkg/validator"
	"github.com/darkkaiser/wcib-server/internal/service/api/constants"
	"github.com/darkkaiser/wcib-server/internal/service/api/httputil"
	"github.com/darkkaiser/wcib-server/internal/service/api/v1/model/request"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// RecommendHandler godoc
// @Summary 구매 조합 추천
// @Description 보유한 조개(shells)로 구매할 수 있는 상품 조합을 추천합니다.
// @Description
// @Description - most_valuable: 비싼 상품부터 담습니다.
// @Description - most_products: 싼 상품부터 담아 상품 수를 최대화합니다.
// @Description
// @Description 필터 적용 후 구매 가능한 상품이 없으면 빈 조합과 message 필드를 반환합니다.
// @Tags Recommendation
// @Accept json
// @Produce json
// @Param request body request.RecommendRequest true "추천 요청"
// @Success 200 {object} recommend.Result "추천 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청 (필수 필드 누락, 형식 오류 등)"
// @Failure 415 {object} response.ErrorResponse "지원하지 않는 Content-Type"
// @Failure 429 {object} response.ErrorResponse "요청 빈도 초과"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Router /api/v1/wcib [post]
func (h *Handler) RecommendHandler(c echo.Context) error {
	req := new(request.RecommendRequest)
	if err := c.Bind(req); err != nil {
		return httputil.NewBadRequestError(bindErrorMessage(err))
	}

	if err := validator.Struct(req); err != nil {
		return httputil.NewBadRequestError(validator.FormatValidationError(err))
	}

	result, err := h.recommender.Recommend(req.ToRecommendRequest())
	if err != nil {
		h.log(c).WithField("error", err).Warn(constants.LogMsgRecommendError)

		if apperrors.Is(err, apperrors.InvalidInput) {
			return httputil.NewBadRequestError(constants.ErrMsgBadRequest)
		}
		return httputil.NewInternalServerError(constants.ErrMsgInternalServer)
	}

	h.log(c).WithFields(applog.Fields{
		"shells":         result.TotalShells,
		"strategy":       result.Strategy,
		"used_shells":    result.UsedShells,
		"total_products": result.TotalProducts,
	}).Debug(constants.LogMsgRecommend)

	return c.JSON(http.StatusOK, result)
}

// bindErrorMessage JSON 타입 불일치는 어느 필드가 잘못되었는지 알려줍니다.
func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s 필드의 형식이 올바르지 않습니다", typeErr.Field)
	}
	return constants.ErrMsgBadRequestInvalidBody
}
