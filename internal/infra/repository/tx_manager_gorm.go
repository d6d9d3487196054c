package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders        repo.OrderRepository
	bills         repo.BillRepository
	archivedBills repo.ArchivedBillRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository               { return r.orders }
func (r *txReposGorm) Bills() repo.BillRepository                 { return r.bills }
func (r *txReposGorm) ArchivedBills() repo.ArchivedBillRepository { return r.archivedBills }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:        NewOrderGormRepository(tx),
			bills:         NewBillGormRepository(tx),
			archivedBills: NewArchivedBillGormRepository(tx),
		}
		return fn(r)
	})
}
