package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"gorm.io/gorm"
)

type bookingGormRepository struct {
	db *gorm.DB
}

// DI
func NewBookingGormRepository(db *gorm.DB) repo.BookingRepository {
	return &bookingGormRepository{db: db}
}

// 予約を作成
func (r *bookingGormRepository) Create(ctx context.Context, booking model.Booking) (model.Booking, error) {
	if err := r.db.WithContext(ctx).Create(&booking).Error; err != nil {
		if isUniqueViolation(err) {
			return model.Booking{}, repo.ErrConflict
		}
		return model.Booking{}, err
	}
	return booking, nil
}

// セッションの予約一覧
func (r *bookingGormRepository) ListBySessionID(ctx context.Context, sessionID string) ([]model.Booking, error) {
	var list []model.Booking
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// 予約コードで1件取得
func (r *bookingGormRepository) FindByCode(ctx context.Context, code string) (model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).Where("booking_code = ?", code).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Booking{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	return b, nil
}
