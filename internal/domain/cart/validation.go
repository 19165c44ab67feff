package cart

import (
	"fmt"
	"strings"
)

// カートに入れる前の入力エラー
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidateCatalogItem はAddItemの前に呼ぶ。Cart自体は検証しない。
func ValidateCatalogItem(item CatalogItem) error {
	if strings.TrimSpace(item.ID) == "" {
		return &ValidationError{Field: "id", Reason: "required"}
	}
	if strings.TrimSpace(item.Name) == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if item.UnitPrice < 0 {
		return &ValidationError{Field: "unit_price", Reason: "must be >= 0"}
	}
	return nil
}
