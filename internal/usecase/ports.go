package usecase

import "time"

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 注文のレシートID（RC...）を作る
type ReceiptIDGenerator interface {
	NewReceiptID(now time.Time) string
}

// 予約コード（BK...）を作る
type BookingCodeGenerator interface {
	NewBookingCode(now time.Time) string
}

// セッションIDを入れたトークンを発行する約束
type SessionTokenIssuer interface {
	Issue(sessionID string, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力チェック（validatorパッケージが実装）
type CheckoutValidator interface {
	ValidateCheckout(in PlaceOrderInput) error
}

type BookingValidator interface {
	ValidateTableBooking(in TableBookingInput, today time.Time) error
	ValidateEventBooking(in EventBookingInput, today time.Time) error
}

type InquiryValidator interface {
	ValidateInquiry(in InquiryInput) error
}
