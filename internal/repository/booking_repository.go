package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

// 予約（テーブル・イベント）を保存・取得する窓口
type BookingRepository interface {
	//作成後はIDなどが埋まったものを返す
	Create(ctx context.Context, booking model.Booking) (model.Booking, error)

	//セッションの予約一覧（新しい順）
	ListBySessionID(ctx context.Context, sessionID string) ([]model.Booking, error)

	FindByCode(ctx context.Context, code string) (model.Booking, error)
}
