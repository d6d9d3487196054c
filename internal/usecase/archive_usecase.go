package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	"app/internal/notifier"
	repo "app/internal/repository"
)

// ArchiveUsecaseは会計済み伝票を長期保管側へ移す。
type ArchiveUsecase struct {
	tx     repo.TransactionManager
	events notifier.Publisher
	clock  Clock
}

// DI
func NewArchiveUsecase(tx repo.TransactionManager, events notifier.Publisher, clock Clock) *ArchiveUsecase {
	return &ArchiveUsecase{
		tx:     tx,
		events: events,
		clock:  clock,
	}
}

// ArchiveBillsは範囲に合う伝票をアーカイブへ「移動」する。
// コピーと削除を同一トランザクションで行い、両方の集合に
// 同時に存在する状態を外から見せない。
// 対象0件は成功（count 0）。
func (u *ArchiveUsecase) ArchiveBills(ctx context.Context, f repo.BillRangeFilter) (int, error) {
	archivedAt := model.FormatISO(u.clock.Now())
	var count int

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		bills, err := r.Bills().List(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		ids := make([]string, 0, len(bills))
		for _, b := range bills {
			ids = append(ids, b.ID)
			archived := model.ArchivedBill{
				ID:          b.ID,
				TableName:   b.TableName,
				Orders:      b.Orders,
				TotalAmount: b.TotalAmount,
				PaidAt:      b.PaidAt,
				PaidAtISO:   b.PaidAtISO,
				Totals:      b.Totals,
				ArchivedAt:  archivedAt,
			}
			if err := r.ArchivedBills().Insert(ctx, archived); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		//削除は読んだIDに限定する。範囲で消すと、Listと削除の間に
		//コミットされた伝票がコピーされないまま消える。
		if len(ids) > 0 {
			if err := r.Bills().DeleteByIDs(ctx, ids); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		count = len(bills)
		return nil
	})

	if err != nil {
		return 0, err
	}

	u.events.Publish(notifier.Event{Type: notifier.EventBillsUpdated})
	u.events.Publish(notifier.Event{Type: notifier.EventArchivedBillsUpdated})
	return count, nil
}

func (u *ArchiveUsecase) ListArchivedBills(ctx context.Context, f repo.BillRangeFilter) ([]model.ArchivedBill, error) {
	var bills []model.ArchivedBill

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		bills, err = r.ArchivedBills().List(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	if err != nil {
		return []model.ArchivedBill{}, err
	}
	return bills, nil
}

func (u *ArchiveUsecase) DeleteAllArchived(ctx context.Context) error {
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.ArchivedBills().DeleteAll(ctx); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return err
	}

	u.events.Publish(notifier.Event{Type: notifier.EventArchivedBillsUpdated})
	return nil
}
