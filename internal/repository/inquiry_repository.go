package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry model.Inquiry) (model.Inquiry, error)
}
