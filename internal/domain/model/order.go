package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "Placed"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusPaid      OrderStatus = "Paid"
)

// LineItemは注文1行分（メニュー名・単価・数量・盛り方）
type LineItem struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	OrderType string  `json:"orderType,omitempty"`
}

// LineItemsはJSONのtextカラムとして保存する
type LineItems []LineItem

func (it *LineItems) Scan(value interface{}) error {
	if value == nil {
		*it = LineItems{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, it)
	case string:
		return json.Unmarshal([]byte(v), it)
	default:
		return fmt.Errorf("failed to scan LineItems: %v", value)
	}
}

func (it LineItems) Value() (driver.Value, error) {
	if it == nil {
		return "[]", nil
	}
	b, err := json.Marshal(it)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type Order struct {
	ID         string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	TableName  string      `gorm:"type:varchar(64);not null;index" json:"table"`
	Items      LineItems   `gorm:"type:text;not null" json:"items"`
	TotalPrice float64     `gorm:"not null" json:"totalPrice"`
	PlacedAt   string      `gorm:"type:varchar(64);not null" json:"time"`
	Status     OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt  time.Time   `gorm:"not null;index;autoCreateTime" json:"-"`
}
