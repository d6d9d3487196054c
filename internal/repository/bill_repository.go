package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

// 会計日時（paid_at_iso）に対する期間絞り込み。nilは無制限。
type BillRangeFilter struct {
	From *time.Time
	To   *time.Time
}

func (f BillRangeFilter) IsZero() bool {
	return f.From == nil && f.To == nil
}

type BillRepository interface {
	Insert(ctx context.Context, bill model.Bill) error
	// 新しい順（paid_at_iso desc、旧データ対策でpaid_at descを併用）
	List(ctx context.Context, f BillRangeFilter) ([]model.Bill, error)
	// ID指定で削除。読んだ集合より広く消さないためのインターフェース。
	DeleteByIDs(ctx context.Context, ids []string) error
}

type ArchivedBillRepository interface {
	Insert(ctx context.Context, bill model.ArchivedBill) error
	List(ctx context.Context, f BillRangeFilter) ([]model.ArchivedBill, error)
	DeleteAll(ctx context.Context) error
}
