package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	"app/internal/notifier"
	"app/internal/pricing"
	repo "app/internal/repository"
)

// BillingUsecaseはテーブルの未会計注文を1枚の伝票にまとめる。
type BillingUsecase struct {
	tx     repo.TransactionManager
	events notifier.Publisher
	idGen  IDGenerator
	clock  Clock
}

// DI
func NewBillingUsecase(tx repo.TransactionManager, events notifier.Publisher, idGen IDGenerator, clock Clock) *BillingUsecase {
	return &BillingUsecase{
		tx:     tx,
		events: events,
		idGen:  idGen,
		clock:  clock,
	}
}

type CreateBillInput struct {
	Table string `json:"table"`
}

// CreateBillは会計処理の本体。
//   - テーブル名を正準化してから注文を引く
//   - 注文0件は404（空伝票は作らない）
//   - 税・サの計算はpricingパッケージに一本化
//   - 注文のスナップショットを伝票へ固定し、注文は一括でPaidへ
//
// ステータスで絞らずテーブルの注文を全部拾う点は既存仕様のまま。
// 会計済みが残っているテーブルを再会計すると二重計上になるが、
// 過去の挙動を変えないためあえてそのままにしている。
func (u *BillingUsecase) CreateBill(ctx context.Context, in CreateBillInput) (model.Bill, error) {
	if strings.TrimSpace(in.Table) == "" {
		return model.Bill{}, NewHTTPError(http.StatusBadRequest, "missing table")
	}
	tableName := NormalizeTable(in.Table)

	var bill model.Bill

	//INSERTと一括Paid遷移は同一トランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByTable(ctx, tableName)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(orders) == 0 {
			return NewHTTPError(http.StatusNotFound, fmt.Sprintf("no orders found for %s", tableName))
		}

		orderTotals := make([]float64, 0, len(orders))
		snapshots := make(model.OrderSnapshots, 0, len(orders))
		for _, o := range orders {
			orderTotals = append(orderTotals, o.TotalPrice)
			snapshots = append(snapshots, model.OrderSnapshot{
				ID:         o.ID,
				Items:      o.Items,
				TotalPrice: o.TotalPrice,
				Time:       o.PlacedAt,
			})
		}

		totals := pricing.Compute(pricing.Subtotal(orderTotals))

		now := u.clock.Now()
		bill = model.Bill{
			ID:          "bill_" + u.idGen.NewID(),
			TableName:   tableName,
			Orders:      snapshots,
			TotalAmount: totals.GrandTotal,
			PaidAt:      now.Format(displayTimeFormat),
			PaidAtISO:   model.FormatISO(now),
			Totals:      totals,
			CreatedAt:   now,
		}

		if err := r.Bills().Insert(ctx, bill); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//事前ステータスは見ない（無条件の一括遷移）
		if err := r.Orders().UpdateStatusByTable(ctx, tableName, model.OrderStatusPaid); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	if err != nil {
		return model.Bill{}, err
	}

	//commit後にだけ通知する
	u.events.Publish(notifier.Event{Type: notifier.EventOrdersUpdated})
	u.events.Publish(notifier.Event{Type: notifier.EventBillsUpdated})
	return bill, nil
}

func (u *BillingUsecase) ListBills(ctx context.Context, f repo.BillRangeFilter) ([]model.Bill, error) {
	var bills []model.Bill

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		bills, err = r.Bills().List(ctx, f)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	if err != nil {
		return []model.Bill{}, err
	}
	return bills, nil
}
