package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一意制約違反など
var ErrConflict = errors.New("conflict")

// メニュー一覧の検索条件
type MenuListQuery struct {
	Page     int
	Limit    int
	Category string
	Q        string
	Popular  bool
}

// メニューの保存・取得の約束
type MenuRepository interface {
	List(ctx context.Context, q MenuListQuery) ([]model.MenuItem, int64, error)
	FindByID(ctx context.Context, id string) (model.MenuItem, error)

	// 既にあるIDは上書きしない（初期データ投入用）
	UpsertMany(ctx context.Context, items []model.MenuItem) error
}
