package handler

import (
	"net/http"

	"github.com/darkkaiser/wcib-server/internal/service/recommend"
	"github.com/labstack/echo/v4"
)

// ProductsHandler godoc
// @Summary 카탈로그 요약
// @Description 카탈로그에 상품이 있는지와 구매 가능한(재고 있는) 상품 수를 반환합니다.
// @Tags Catalog
// @Produce json
// @Success 200 {object} recommend.Summary "카탈로그 요약"
// @Router /api/v1/products [get]
func (h *Handler) ProductsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, recommend.Summarize(h.store.Current()))
}

// SearchHandler godoc
// @Summary 상품명 검색
// @Description 재고가 있는 상품 중 이름에 검색어가 포함된 상품의 이름을 최대 8개까지 반환합니다.
// @Description 검색어는 2자 이상이어야 하며, 대소문자를 구분하지 않습니다.
// @Tags Catalog
// @Produce json
// @Param q query string true "검색어 (2자 이상)" example(stick)
// @Success 200 {object} recommend.SearchResult "검색 결과"
// @Router /api/v1/products/search [get]
func (h *Handler) SearchHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, recommend.Search(h.store.Current().Products(), c.QueryParam("q")))
}
