package model

import "time"

type BookingType string

const (
	BookingTypeTable BookingType = "table"
	BookingTypeEvent BookingType = "event"
)

// テーブル予約と貸切イベントを1テーブルで持つ。
// Event* / MenuPackage / Budget はイベントのときだけ使う。
type Booking struct {
	ID                  int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingCode         string      `gorm:"type:varchar(64);not null;uniqueIndex" json:"booking_code"`
	SessionID           string      `gorm:"type:varchar(64);not null;index" json:"-"`
	Type                BookingType `gorm:"type:varchar(20);not null;index" json:"type"`
	Name                string      `gorm:"type:varchar(255);not null" json:"name"`
	Email               string      `gorm:"type:varchar(255);not null" json:"email"`
	Phone               string      `gorm:"type:varchar(30);not null" json:"phone"`
	Date                string      `gorm:"type:varchar(10);not null;index" json:"date"`
	Time                string      `gorm:"type:varchar(5);not null" json:"time"`
	Guests              int64       `gorm:"not null" json:"guests"`
	SpecialRequests     string      `gorm:"type:text" json:"special_requests"`
	EventType           string      `gorm:"type:varchar(50)" json:"event_type,omitempty"`
	MenuPackage         string      `gorm:"type:varchar(20)" json:"menu_package,omitempty"`
	Budget              string      `gorm:"type:varchar(50)" json:"budget,omitempty"`
	DietaryRestrictions string      `gorm:"type:text" json:"dietary_restrictions,omitempty"`
	ContactMethod       string      `gorm:"type:varchar(10)" json:"contact_method,omitempty"`
	IsConfirmed         bool        `gorm:"not null;default:false" json:"is_confirmed"`
	CreatedAt           time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}

// 予約できる時間帯（30分刻み）
var TimeSlots = []string{
	"11:00", "11:30", "12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30", "17:00", "17:30", "18:00", "18:30",
	"19:00", "19:30", "20:00", "20:30", "21:00", "21:30",
}

var EventTypes = []string{
	"Birthday Party",
	"Anniversary",
	"Corporate Event",
	"Wedding Reception",
	"Baby Shower",
	"Graduation Party",
	"Holiday Party",
	"Other",
}

type MenuPackage struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	PricePerPerson int64    `json:"price_per_person"`
	Description    string   `json:"description"`
	Items          []string `json:"items"`
}

var MenuPackages = []MenuPackage{
	{
		ID: "silver", Name: "Silver Package", PricePerPerson: 4500,
		Description: "Appetizer, main course, dessert, and soft drinks",
		Items:       []string{"Caesar Salad or Soup", "Choice of 3 Main Courses", "Seasonal Dessert", "Coffee & Tea"},
	},
	{
		ID: "gold", Name: "Gold Package", PricePerPerson: 6500,
		Description: "Premium appetizers, multiple courses, wine pairing",
		Items:       []string{"Premium Appetizer Selection", "Choice of 4 Main Courses", "Wine Pairing", "Gourmet Desserts", "Full Bar Service"},
	},
	{
		ID: "platinum", Name: "Platinum Package", PricePerPerson: 8500,
		Description: "Luxury dining experience with chef specialties",
		Items:       []string{"Chef's Special Appetizers", "Choice of 5 Signature Dishes", "Premium Wine Selection", "Custom Dessert Options", "Full Bar & Cocktails", "Dedicated Server"},
	},
}
