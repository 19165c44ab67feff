package model

import "time"

// メニュー商品。IDは文字列（カートの明細IDと同じ値）。
type MenuItem struct {
	ID          string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Category    string    `gorm:"type:varchar(50);not null;index" json:"category"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Popular     bool      `gorm:"not null;default:false;index" json:"popular"`
	Tags        []string  `gorm:"type:jsonb;serializer:json" json:"tags"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

type MenuCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var MenuCategories = []MenuCategory{
	{ID: "breakfast", Name: "Breakfast", Description: "Start your day with our delicious breakfast options"},
	{ID: "lunch", Name: "Lunch", Description: "Satisfying meals for your midday hunger"},
	{ID: "coffee", Name: "Coffee", Description: "Premium coffee blends and specialty drinks"},
	{ID: "tea", Name: "Tea", Description: "Soothing tea varieties from around the world"},
	{ID: "beers", Name: "Beers", Description: "Craft and local beers for every taste"},
}

func IsMenuCategory(id string) bool {
	for _, c := range MenuCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}
