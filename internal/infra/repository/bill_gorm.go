package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type BillGormRepository struct {
	db *gorm.DB
}

func NewBillGormRepository(db *gorm.DB) *BillGormRepository {
	return &BillGormRepository{db: db}
}

// ISO文字列（UTC）で比較する。辞書順＝時刻順になる。
func applyBillRange(q *gorm.DB, f repo.BillRangeFilter) *gorm.DB {
	if f.From != nil {
		q = q.Where("paid_at_iso >= ?", model.FormatISO(*f.From))
	}
	if f.To != nil {
		q = q.Where("paid_at_iso <= ?", model.FormatISO(*f.To))
	}
	return q
}

func (r *BillGormRepository) Insert(ctx context.Context, bill model.Bill) error {
	return r.db.WithContext(ctx).Create(&bill).Error
}

func (r *BillGormRepository) List(ctx context.Context, f repo.BillRangeFilter) ([]model.Bill, error) {
	var items []model.Bill
	q := applyBillRange(r.db.WithContext(ctx), f)
	err := q.Order("paid_at_iso desc, paid_at desc").Find(&items).Error
	if err != nil {
		return []model.Bill{}, err
	}
	return items, nil
}

func (r *BillGormRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Bill{}).Error
}
