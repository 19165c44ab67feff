package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"restaurant/internal/domain/cart"
	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
)

type MenuUsecase struct {
	menus repo.MenuRepository
}

// DI
func NewMenuUsecase(menus repo.MenuRepository) *MenuUsecase {
	return &MenuUsecase{menus: menus}
}

// GET /menu の入力DTO
type ListMenuInput struct {
	Page     int
	Limit    int
	Category string
	Q        string
	Popular  bool
}

type MenuListOutput struct {
	Items []model.MenuItem `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (u *MenuUsecase) List(ctx context.Context, in ListMenuInput) (MenuListOutput, error) {
	if in.Page < 1 {
		return MenuListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return MenuListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return MenuListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	if in.Category != "" && !model.IsMenuCategory(in.Category) {
		return MenuListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	items, total, err := u.menus.List(ctx, repo.MenuListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Category: in.Category,
		Q:        strings.TrimSpace(in.Q),
		Popular:  in.Popular,
	})
	if err != nil {
		return MenuListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MenuListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *MenuUsecase) Get(ctx context.Context, id string) (model.MenuItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	m, err := u.menus.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !m.IsActive {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return m, nil
}

func (u *MenuUsecase) Categories() []model.MenuCategory {
	out := make([]model.MenuCategory, len(model.MenuCategories))
	copy(out, model.MenuCategories)
	return out
}

// メニュー商品をカートに入れる形へ
func ToCatalogItem(m model.MenuItem) cart.CatalogItem {
	return cart.CatalogItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		UnitPrice:   m.Price,
		Tags:        m.Tags,
	}
}
