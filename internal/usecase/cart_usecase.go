package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"restaurant/internal/domain/cart"
	"restaurant/internal/domain/pricing"
	repo "restaurant/internal/repository"

	"github.com/shopspring/decimal"
)

// 1明細の数量上限（金額計算があふれない範囲）
const MaxLineQuantity int64 = 999

// CartUsecase は /cart の業務ロジック。
// カートはセッションストアにあり、金額は毎回計算し直す。
type CartUsecase struct {
	sessions repo.SessionRepository
	menus    repo.MenuRepository
	rate     decimal.Decimal
}

func NewCartUsecase(
	sessions repo.SessionRepository,
	menus repo.MenuRepository,
	rate decimal.Decimal,
) *CartUsecase {
	return &CartUsecase{
		sessions: sessions,
		menus:    menus,
		rate:     rate,
	}
}

// 明細と金額を必ずセットで返す
type CartResponse struct {
	Items   []cart.LineItem  `json:"items"`
	State   string           `json:"state"`
	Pricing pricing.Snapshot `json:"pricing"`
}

func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	var out CartResponse
	err := u.withCart(ctx, sessionID, func(c *cart.Cart) error {
		out = u.buildCartResponse(c)
		return nil
	})
	return out, err
}

// AddItem は商品を1つ追加（同じIDなら数量+1）。
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, menuItemID string) (CartResponse, error) {
	menuItemID = strings.TrimSpace(menuItemID)
	if menuItemID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid menu_item_id")
	}

	m, err := u.menus.FindByID(ctx, menuItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid menu_item_id")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !m.IsActive {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid menu_item_id")
	}

	item := ToCatalogItem(m)
	if err := cart.ValidateCatalogItem(item); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var out CartResponse
	err = u.withCart(ctx, sessionID, func(c *cart.Cart) error {
		if li, ok := c.Get(item.ID); ok && li.Quantity >= MaxLineQuantity {
			return NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		c.AddItem(item)
		out = u.buildCartResponse(c)
		return nil
	})
	return out, err
}

// UpdateQuantity は数量を上書き。0以下は削除と同じ。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID string, lineID string, quantity int64) (CartResponse, error) {
	if quantity > MaxLineQuantity {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	var out CartResponse
	err := u.withCart(ctx, sessionID, func(c *cart.Cart) error {
		if !c.SetQuantity(lineID, quantity) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		out = u.buildCartResponse(c)
		return nil
	})
	return out, err
}

func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, lineID string) (CartResponse, error) {
	var out CartResponse
	err := u.withCart(ctx, sessionID, func(c *cart.Cart) error {
		if !c.RemoveItem(lineID) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		out = u.buildCartResponse(c)
		return nil
	})
	return out, err
}

func (u *CartUsecase) Clear(ctx context.Context, sessionID string) (CartResponse, error) {
	var out CartResponse
	err := u.withCart(ctx, sessionID, func(c *cart.Cart) error {
		c.Clear()
		out = u.buildCartResponse(c)
		return nil
	})
	return out, err
}

func (u *CartUsecase) withCart(ctx context.Context, sessionID string, fn func(c *cart.Cart) error) error {
	if sessionID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	err := u.sessions.WithCart(ctx, sessionID, fn)
	if err == nil {
		return nil
	}
	if _, ok := AsHTTPError(err); ok {
		return err
	}
	if errors.Is(err, repo.ErrNotFound) {
		// 期限切れで消えたセッション
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NewHTTPError(http.StatusServiceUnavailable, "canceled")
	}
	return NewHTTPError(http.StatusInternalServerError, "session error")
}

func (u *CartUsecase) buildCartResponse(c *cart.Cart) CartResponse {
	items := c.Items()
	return CartResponse{
		Items:   items,
		State:   c.State().String(),
		Pricing: pricing.Compute(items, u.rate),
	}
}
