package repository

import (
	"context"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"gorm.io/gorm"
)

type inquiryGormRepository struct {
	db *gorm.DB
}

// DI
func NewInquiryGormRepository(db *gorm.DB) repo.InquiryRepository {
	return &inquiryGormRepository{db: db}
}

func (r *inquiryGormRepository) Create(ctx context.Context, inquiry model.Inquiry) (model.Inquiry, error) {
	if err := r.db.WithContext(ctx).Create(&inquiry).Error; err != nil {
		return model.Inquiry{}, err
	}
	return inquiry, nil
}
