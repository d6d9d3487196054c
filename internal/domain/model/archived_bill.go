package model

import "time"

// ArchivedBillはアーカイブへ移動した伝票。片道で、アクティブには戻らない。
// 旧データはPaidAtISOが空のことがある（ソート時はPaidAtで代用）。
type ArchivedBill struct {
	ID          string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	TableName   string         `gorm:"type:varchar(64);not null;index" json:"table"`
	Orders      OrderSnapshots `gorm:"type:text;not null" json:"orders"`
	TotalAmount float64        `gorm:"not null" json:"totalAmount"`
	PaidAt      string         `gorm:"type:varchar(64);not null" json:"paidAt"`
	PaidAtISO   string         `gorm:"type:varchar(40);index" json:"paidAtIso"`
	Totals      Totals         `gorm:"type:text" json:"totals"`
	ArchivedAt  string         `gorm:"type:varchar(40);not null" json:"archivedAt"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"-"`
}
