package usecase

import (
	"context"
	"net/http"
	"strings"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"go.uber.org/zap"
)

// InquiryUsecase はお問い合わせの受付（セッション不要）。
type InquiryUsecase struct {
	inquiries repo.InquiryRepository
	validator InquiryValidator
	clock     Clock
	log       *zap.Logger
}

// DI
func NewInquiryUsecase(
	inquiries repo.InquiryRepository,
	validator InquiryValidator,
	clock Clock,
	log *zap.Logger,
) *InquiryUsecase {
	return &InquiryUsecase{
		inquiries: inquiries,
		validator: validator,
		clock:     clock,
		log:       log,
	}
}

type InquiryInput struct {
	InquiryType string
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
}

func (u *InquiryUsecase) Submit(ctx context.Context, in InquiryInput) (model.Inquiry, error) {
	in.InquiryType = strings.TrimSpace(in.InquiryType)
	if in.InquiryType == "" {
		in.InquiryType = model.DefaultInquiryType
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = strings.TrimSpace(in.Subject)

	if err := u.validator.ValidateInquiry(in); err != nil {
		return model.Inquiry{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := u.inquiries.Create(ctx, model.Inquiry{
		InquiryType: in.InquiryType,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Subject:     in.Subject,
		Message:     in.Message,
		CreatedAt:   u.clock.Now(),
	})
	if err != nil {
		return model.Inquiry{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Info("inquiry received",
		zap.Int64("id", created.ID),
		zap.String("type", created.InquiryType))
	return created, nil
}

func (u *InquiryUsecase) InquiryTypes() []string {
	return append([]string(nil), model.InquiryTypes...)
}
