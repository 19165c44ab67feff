package model

import "time"

// お問い合わせフォームの送信内容
type Inquiry struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	InquiryType string    `gorm:"type:varchar(20);not null;index" json:"inquiry_type"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone       string    `gorm:"type:varchar(30)" json:"phone"`
	Subject     string    `gorm:"type:varchar(255);not null" json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

const DefaultInquiryType = "general"

var InquiryTypes = []string{"general", "reservation", "events", "catering"}
