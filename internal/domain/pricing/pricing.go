package pricing

import (
	"errors"
	"strings"

	"restaurant/internal/domain/cart"

	"github.com/shopspring/decimal"
)

var ErrInvalidRate = errors.New("tax rate must be >= 0 and < 1")

// カート内容から都度計算する金額（保存しない）
type Snapshot struct {
	Subtotal  int64 `json:"subtotal"`
	TaxAmount int64 `json:"tax_amount"`
	Total     int64 `json:"total"`
	ItemCount int64 `json:"item_count"`
}

// 単価×数量の合計（セント）
func Subtotal(items []cart.LineItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.UnitPrice * it.Quantity
	}
	return sum
}

// 税額。セント単位で四捨五入（0.5は切り上げ）。
func Tax(subtotal int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(subtotal).Mul(rate).Round(0).IntPart()
}

func Total(subtotal int64, tax int64) int64 {
	return subtotal + tax
}

func Compute(items []cart.LineItem, rate decimal.Decimal) Snapshot {
	subtotal := Subtotal(items)
	tax := Tax(subtotal, rate)

	var count int64
	for _, it := range items {
		count += it.Quantity
	}

	return Snapshot{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     Total(subtotal, tax),
		ItemCount: count,
	}
}

func ForCart(c *cart.Cart, rate decimal.Decimal) Snapshot {
	return Compute(c.Items(), rate)
}

// ParseRate は "0.08" のような税率を読む。
func ParseRate(s string) (decimal.Decimal, error) {
	r, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidRate
	}
	if r.IsNegative() || r.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, ErrInvalidRate
	}
	return r, nil
}
