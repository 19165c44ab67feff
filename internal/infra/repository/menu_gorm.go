package repository

import (
	"context"
	"errors"
	"strings"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuGormRepository struct {
	db *gorm.DB
}

// DI
func NewMenuGormRepository(db *gorm.DB) *MenuGormRepository {
	return &MenuGormRepository{db: db}
}

// 公開中のメニューを、カテゴリ/検索/人気/ページング付きで返す。
func (r *MenuGormRepository) List(ctx context.Context, q repo.MenuListQuery) ([]model.MenuItem, int64, error) {
	var items []model.MenuItem
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.MenuItem{})
	tx = tx.Where("is_active = ?", true)

	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	// q は name と description を対象
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	if q.Popular {
		tx = tx.Where("popular = ?", true)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.MenuItem{}, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	if err := tx.Order("category asc").Order("id asc").Offset(offset).Limit(q.Limit).Find(&items).Error; err != nil {
		return []model.MenuItem{}, 0, err
	}

	return items, total, nil
}

// IDでメニューを取得
func (r *MenuGormRepository) FindByID(ctx context.Context, id string) (model.MenuItem, error) {
	var m model.MenuItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.MenuItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.MenuItem{}, err
	}
	return m, nil
}

// 初期データ投入。既存IDはそのまま。
func (r *MenuGormRepository) UpsertMany(ctx context.Context, items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&items).Error
}

var _ repo.MenuRepository = (*MenuGormRepository)(nil)
