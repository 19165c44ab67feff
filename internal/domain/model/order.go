package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// チェックアウト時に保存する注文（金額はセント）
type Order struct {
	ID             int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ReceiptID      string      `gorm:"type:varchar(64);not null;uniqueIndex" json:"receipt_id"`
	SessionID      string      `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_orders_session_idem" json:"-"`
	ReferenceCode  string      `gorm:"type:varchar(100);not null" json:"reference_code"`
	CustomerName   string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail  string      `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone  string      `gorm:"type:varchar(30);not null" json:"customer_phone"`
	Status         OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Subtotal       int64       `gorm:"not null" json:"subtotal"`
	Tax            int64       `gorm:"not null" json:"tax"`
	Total          int64       `gorm:"not null" json:"total"`
	IdempotencyKey string      `gorm:"type:varchar(255);not null;uniqueIndex:idx_orders_session_idem" json:"-"`
	CreatedAt      time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
