// Package handler v1 API 핸들러를 제공합니다.
package handler

import (
	"github.com/darkkaiser/wcib-server/internal/service/api/constants"
	"github.com/darkkaiser/wcib-server/internal/service/catalog"
	"github.com/darkkaiser/wcib-server/internal/service/recommend"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 추천 및 카탈로그 조회 요청을 처리합니다.
type Handler struct {
	recommender *recommend.Recommender
	store       *catalog.Store
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(recommender *recommend.Recommender, store *catalog.Store) *Handler {
	if recommender == nil {
		panic(constants.PanicMsgRecommenderRequired)
	}
	if store == nil {
		panic(constants.PanicMsgCatalogStoreRequired)
	}

	return &Handler{
		recommender: recommender,
		store:       store,
	}
}

func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"remote_ip":  c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
