package validator

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"restaurant/internal/domain/model"
	"restaurant/internal/usecase"
)

var (
	// メール（例: a@b.c）
	emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

	// 注文の電話番号（数字と空白のみ、10文字以上）
	orderPhoneRe = regexp.MustCompile(`^\+?[\d\s]{10,}$`)

	// 予約の電話番号（-や()も可）
	bookingPhoneRe = regexp.MustCompile(`^\+?[\d\s\-\(\)]{10,}$`)
)

const (
	minReferenceLen = 6
	maxTableGuests  = 12
	minEventGuests  = 10
	maxEventGuests  = 200
	minMessageLen   = 10
)

// Usecaseは interface を依存注入
type contactValidator struct{}

func NewCheckoutValidator() usecase.CheckoutValidator {
	return &contactValidator{}
}

func NewBookingValidator() usecase.BookingValidator {
	return &contactValidator{}
}

func NewInquiryValidator() usecase.InquiryValidator {
	return &contactValidator{}
}

// チェックアウトの入力を検証
func (v *contactValidator) ValidateCheckout(in usecase.PlaceOrderInput) error {
	ref := strings.TrimSpace(in.ReferenceCode)
	if ref == "" {
		return errors.New("reference code is required")
	}
	if len(ref) < minReferenceLen {
		return errors.New("reference code must be at least 6 characters")
	}

	if strings.TrimSpace(in.CustomerName) == "" {
		return errors.New("customer name is required")
	}

	if err := checkEmail(in.CustomerEmail); err != nil {
		return err
	}

	phone := strings.TrimSpace(in.CustomerPhone)
	if phone == "" {
		return errors.New("phone is required")
	}
	if !orderPhoneRe.MatchString(phone) {
		return errors.New("phone is invalid")
	}

	return nil
}

// テーブル予約を検証
func (v *contactValidator) ValidateTableBooking(in usecase.TableBookingInput, today time.Time) error {
	if err := checkDate(in.Date, today); err != nil {
		return err
	}

	if in.Time == "" {
		return errors.New("time is required")
	}
	if !isTimeSlot(in.Time) {
		return errors.New("time is not available")
	}

	if in.Guests < 1 || in.Guests > maxTableGuests {
		return errors.New("guests must be between 1 and 12")
	}

	return checkContact(in.Name, in.Email, in.Phone)
}

// 貸切イベントを検証
func (v *contactValidator) ValidateEventBooking(in usecase.EventBookingInput, today time.Time) error {
	if err := checkContact(in.Name, in.Email, in.Phone); err != nil {
		return err
	}

	if err := checkDate(in.EventDate, today); err != nil {
		return err
	}

	if in.EventTime == "" {
		return errors.New("event time is required")
	}
	if _, err := time.Parse("15:04", in.EventTime); err != nil {
		return errors.New("event time is invalid")
	}

	if in.GuestCount < minEventGuests {
		return errors.New("minimum number of guests is 10")
	}
	if in.GuestCount > maxEventGuests {
		return errors.New("maximum number of guests is 200")
	}

	if in.EventType == "" {
		return errors.New("event type is required")
	}
	if !contains(model.EventTypes, in.EventType) {
		return errors.New("event type is invalid")
	}

	if in.MenuPackage == "" {
		return errors.New("menu package is required")
	}
	if !isMenuPackage(in.MenuPackage) {
		return errors.New("menu package is invalid")
	}

	if strings.TrimSpace(in.Budget) == "" {
		return errors.New("budget is required")
	}

	switch in.ContactMethod {
	case "phone", "email":
	default:
		return errors.New("contact method must be phone or email")
	}

	return nil
}

// お問い合わせを検証（電話は任意）
func (v *contactValidator) ValidateInquiry(in usecase.InquiryInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if err := checkEmail(in.Email); err != nil {
		return err
	}

	if !contains(model.InquiryTypes, in.InquiryType) {
		return errors.New("inquiry type is invalid")
	}

	if strings.TrimSpace(in.Subject) == "" {
		return errors.New("subject is required")
	}

	if strings.TrimSpace(in.Message) == "" {
		return errors.New("message is required")
	}
	if len([]rune(in.Message)) < minMessageLen {
		return errors.New("message must be at least 10 characters")
	}

	return nil
}

func checkContact(name string, email string, phone string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	if err := checkEmail(email); err != nil {
		return err
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errors.New("phone is required")
	}
	if !bookingPhoneRe.MatchString(phone) {
		return errors.New("phone is invalid")
	}
	return nil
}

func checkEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRe.MatchString(email) {
		return errors.New("email is invalid")
	}
	return nil
}

// YYYY-MM-DD で今日以降
func checkDate(date string, today time.Time) error {
	if date == "" {
		return errors.New("date is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.New("date is invalid")
	}
	if date < today.Format("2006-01-02") {
		return errors.New("date must not be in the past")
	}
	return nil
}

func isTimeSlot(t string) bool {
	return contains(model.TimeSlots, t)
}

func isMenuPackage(id string) bool {
	for _, p := range model.MenuPackages {
		if p.ID == id {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
