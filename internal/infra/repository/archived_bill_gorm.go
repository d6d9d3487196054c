package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ArchivedBillGormRepository struct {
	db *gorm.DB
}

func NewArchivedBillGormRepository(db *gorm.DB) *ArchivedBillGormRepository {
	return &ArchivedBillGormRepository{db: db}
}

func (r *ArchivedBillGormRepository) Insert(ctx context.Context, bill model.ArchivedBill) error {
	return r.db.WithContext(ctx).Create(&bill).Error
}

func (r *ArchivedBillGormRepository) List(ctx context.Context, f repo.BillRangeFilter) ([]model.ArchivedBill, error) {
	var items []model.ArchivedBill
	q := r.db.WithContext(ctx)
	if f.From != nil {
		q = q.Where("paid_at_iso >= ?", model.FormatISO(*f.From))
	}
	if f.To != nil {
		q = q.Where("paid_at_iso <= ?", model.FormatISO(*f.To))
	}
	// 旧データはpaid_at_isoが空なのでpaid_atで補う
	err := q.Order("paid_at_iso desc, paid_at desc").Find(&items).Error
	if err != nil {
		return []model.ArchivedBill{}, err
	}
	return items, nil
}

func (r *ArchivedBillGormRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.ArchivedBill{}).Error
}
