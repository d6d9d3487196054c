package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ソート・範囲絞り込みに使うISO形式（UTC、ミリ秒まで）
const TimestampISOFormat = "2006-01-02T15:04:05.000Z"

func FormatISO(t time.Time) string {
	return t.UTC().Format(TimestampISOFormat)
}

// Totalsは会計の内訳。grandTotal = subtotal + tax + service（税・サ各々を2桁丸め）
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	Service    float64 `json:"service"`
	GrandTotal float64 `json:"grandTotal"`
}

func (t *Totals) Scan(value interface{}) error {
	if value == nil {
		*t = Totals{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("failed to scan Totals: %v", value)
	}
}

func (t Totals) Value() (driver.Value, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// OrderSnapshotは伝票に固定した注文のコピー。
// 元の注文が消えても伝票側は変わらない。
type OrderSnapshot struct {
	ID         string    `json:"id"`
	Items      LineItems `json:"items"`
	TotalPrice float64   `json:"totalPrice"`
	Time       string    `json:"time"`
}

type OrderSnapshots []OrderSnapshot

func (s *OrderSnapshots) Scan(value interface{}) error {
	if value == nil {
		*s = OrderSnapshots{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("failed to scan OrderSnapshots: %v", value)
	}
}

func (s OrderSnapshots) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type Bill struct {
	ID          string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	TableName   string         `gorm:"type:varchar(64);not null;index" json:"table"`
	Orders      OrderSnapshots `gorm:"type:text;not null" json:"orders"`
	TotalAmount float64        `gorm:"not null" json:"totalAmount"`
	PaidAt      string         `gorm:"type:varchar(64);not null" json:"paidAt"`
	PaidAtISO   string         `gorm:"type:varchar(40);index" json:"paidAtIso"`
	Totals      Totals         `gorm:"type:text" json:"totals"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"-"`
}
