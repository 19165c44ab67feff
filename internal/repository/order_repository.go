package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

type OrderRepository interface {
	FindByReceiptID(ctx context.Context, receiptID string) (model.Order, error)
	ListBySessionID(ctx context.Context, sessionID string, page int, limit int) ([]model.Order, int64, error)
	// receipt_id / idempotency_key の重複は ErrConflict
	Create(ctx context.Context, order model.Order) (int64, error)

	//検索（同じキーなら同じ結果を返す）
	FindByIdempotencyKey(ctx context.Context, sessionID string, key string) (model.Order, bool, error)
}
