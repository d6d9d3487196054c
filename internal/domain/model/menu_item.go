package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OrderTypesはメニュー1品の盛り方の選択肢（Half/Fullなど）
type OrderTypes []string

func (o *OrderTypes) Scan(value interface{}) error {
	if value == nil {
		*o = OrderTypes{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return fmt.Errorf("failed to scan OrderTypes: %v", value)
	}
}

func (o OrderTypes) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type MenuItem struct {
	ID          string     `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Price       float64    `gorm:"not null" json:"price"`
	Category    string     `gorm:"type:varchar(128);not null" json:"category"`
	Description string     `gorm:"type:text" json:"description"`
	ImageURL    string     `gorm:"type:varchar(512)" json:"image_url"`
	OrderTypes  OrderTypes `gorm:"type:text" json:"order_types"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime" json:"-"`
}
