package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"go.uber.org/zap"
)

// BookingUsecase はテーブル予約と貸切イベントの受付。
type BookingUsecase struct {
	bookings  repo.BookingRepository
	validator BookingValidator
	codes     BookingCodeGenerator
	clock     Clock
	log       *zap.Logger
}

// DI
func NewBookingUsecase(
	bookings repo.BookingRepository,
	validator BookingValidator,
	codes BookingCodeGenerator,
	clock Clock,
	log *zap.Logger,
) *BookingUsecase {
	return &BookingUsecase{
		bookings:  bookings,
		validator: validator,
		codes:     codes,
		clock:     clock,
		log:       log,
	}
}

type TableBookingInput struct {
	Date            string
	Time            string
	Guests          int64
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
}

type EventBookingInput struct {
	EventDate           string
	EventTime           string
	GuestCount          int64
	EventType           string
	MenuPackage         string
	Budget              string
	DietaryRestrictions string
	SpecialRequests     string
	ContactMethod       string
	Name                string
	Email               string
	Phone               string
}

type EventOptionsOutput struct {
	EventTypes   []string            `json:"event_types"`
	MenuPackages []model.MenuPackage `json:"menu_packages"`
	TimeSlots    []string            `json:"time_slots"`
}

func (u *BookingUsecase) CreateTableBooking(ctx context.Context, sessionID string, in TableBookingInput) (model.Booking, error) {
	if sessionID == "" {
		return model.Booking{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	now := u.clock.Now()
	if err := u.validator.ValidateTableBooking(in, now); err != nil {
		return model.Booking{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return u.create(ctx, model.Booking{
		BookingCode:     u.codes.NewBookingCode(now),
		SessionID:       sessionID,
		Type:            model.BookingTypeTable,
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Date:            in.Date,
		Time:            in.Time,
		Guests:          in.Guests,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		IsConfirmed:     false,
		CreatedAt:       now,
	})
}

func (u *BookingUsecase) CreateEventBooking(ctx context.Context, sessionID string, in EventBookingInput) (model.Booking, error) {
	if sessionID == "" {
		return model.Booking{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Budget = strings.TrimSpace(in.Budget)
	// 連絡方法の既定は電話
	if strings.TrimSpace(in.ContactMethod) == "" {
		in.ContactMethod = "phone"
	}

	now := u.clock.Now()
	if err := u.validator.ValidateEventBooking(in, now); err != nil {
		return model.Booking{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return u.create(ctx, model.Booking{
		BookingCode:         u.codes.NewBookingCode(now),
		SessionID:           sessionID,
		Type:                model.BookingTypeEvent,
		Name:                in.Name,
		Email:               in.Email,
		Phone:               in.Phone,
		Date:                in.EventDate,
		Time:                in.EventTime,
		Guests:              in.GuestCount,
		SpecialRequests:     strings.TrimSpace(in.SpecialRequests),
		EventType:           in.EventType,
		MenuPackage:         in.MenuPackage,
		Budget:              in.Budget,
		DietaryRestrictions: strings.TrimSpace(in.DietaryRestrictions),
		ContactMethod:       in.ContactMethod,
		IsConfirmed:         false,
		CreatedAt:           now,
	})
}

func (u *BookingUsecase) ListBookings(ctx context.Context, sessionID string) ([]model.Booking, error) {
	if sessionID == "" {
		return []model.Booking{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	list, err := u.bookings.ListBySessionID(ctx, sessionID)
	if err != nil {
		return []model.Booking{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if list == nil {
		list = []model.Booking{}
	}
	return list, nil
}

func (u *BookingUsecase) EventOptions() EventOptionsOutput {
	return EventOptionsOutput{
		EventTypes:   append([]string(nil), model.EventTypes...),
		MenuPackages: append([]model.MenuPackage(nil), model.MenuPackages...),
		TimeSlots:    append([]string(nil), model.TimeSlots...),
	}
}

func (u *BookingUsecase) create(ctx context.Context, b model.Booking) (model.Booking, error) {
	created, err := u.bookings.Create(ctx, b)
	if errors.Is(err, repo.ErrConflict) {
		// 同じミリ秒に別の予約が入った
		return model.Booking{}, NewHTTPError(http.StatusConflict, "booking code conflict")
	}
	if err != nil {
		return model.Booking{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Info("booking created",
		zap.String("booking_code", created.BookingCode),
		zap.String("type", string(created.Type)),
		zap.String("date", created.Date),
		zap.Int64("guests", created.Guests))
	return created, nil
}
