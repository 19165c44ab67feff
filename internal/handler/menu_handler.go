package handler

import (
	"net/http"
	"strconv"

	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /menu の公開API
type MenuHandler struct {
	uc *usecase.MenuUsecase
}

// DI
func NewMenuHandler(uc *usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// メニューのルートを登録
func (h *MenuHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/menu", h.list)
	e.GET("/menu/categories", h.categories)
	e.GET("/menu/:id", h.detail)
}

func (h *MenuHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 50）
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	popular := false
	if v := c.QueryParam("popular"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid popular"})
		}
		popular = b
	}

	out, err := h.uc.List(c.Request().Context(), usecase.ListMenuInput{
		Page:     page,
		Limit:    limit,
		Category: c.QueryParam("category"),
		Q:        c.QueryParam("q"),
		Popular:  popular,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *MenuHandler) categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Categories())
}

func (h *MenuHandler) detail(c echo.Context) error {
	m, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, m)
}
