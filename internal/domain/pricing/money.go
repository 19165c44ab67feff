package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// 表示用（3098 -> "30.98"）
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// "12.99" -> 1299。小数3桁以上や負数はエラー。
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, ErrInvalidAmount
	}
	if !d.Equal(d.Round(2)) {
		return 0, ErrInvalidAmount
	}
	return d.Shift(2).IntPart(), nil
}
