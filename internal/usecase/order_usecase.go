package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	"app/internal/notifier"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// 注文時刻の表示形式（レシートと同じ）
const displayTimeFormat = "1/2/2006, 3:04:05 PM"

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	events    notifier.Publisher
	idGen     IDGenerator
	clock     Clock
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository, events notifier.Publisher, idGen IDGenerator, clock Clock) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		events:    events,
		idGen:     idGen,
		clock:     clock,
	}
}

type PlaceOrderInput struct {
	Table string          `json:"table"`
	Items model.LineItems `json:"items"`
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (model.Order, error) {
	if strings.TrimSpace(in.Table) == "" || len(in.Items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order payload: missing table or items")
	}

	//単価・数量のチェック
	for _, it := range in.Items {
		if it.Price < 0 || it.Quantity < 1 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid item in order: missing or invalid price/quantity")
		}
	}

	//合計はサーバ側で計算する（クライアントの値は信用しない）
	total := decimal.Zero
	for _, it := range in.Items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	totalPrice := total.InexactFloat64()
	if totalPrice <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid total price calculated for order")
	}

	now := u.clock.Now()
	order := model.Order{
		ID:         "ord_" + u.idGen.NewID(),
		TableName:  NormalizeTable(in.Table),
		Items:      in.Items,
		TotalPrice: totalPrice,
		PlacedAt:   now.Format(displayTimeFormat),
		Status:     model.OrderStatusPlaced,
		CreatedAt:  now,
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "failed to place order")
	}

	u.events.Publish(notifier.Event{Type: notifier.EventOrdersUpdated})
	return order, nil
}

func (u *OrderUsecase) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

type UpdateOrderStatusInput struct {
	Status string `json:"status"`
}

func validOrderStatus(s string) (model.OrderStatus, bool) {
	switch model.OrderStatus(s) {
	case model.OrderStatusPlaced, model.OrderStatusPreparing, model.OrderStatusDelivered, model.OrderStatusPaid:
		return model.OrderStatus(s), true
	}
	return "", false
}

// ステータス更新。Placed→Preparing→Delivered→Paidの順が前提だが、
// 逆行は弾かない（運用で差し戻すことがある）。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID string, in UpdateOrderStatusInput) (model.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Status == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "missing status")
	}
	status, ok := validOrderStatus(in.Status)
	if !ok {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	if err := u.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	updated, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.events.Publish(notifier.Event{Type: notifier.EventOrdersUpdated})
	return updated, nil
}

func (u *OrderUsecase) DeleteAllOrders(ctx context.Context) error {
	if err := u.orderRepo.DeleteAll(ctx); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	u.events.Publish(notifier.Event{Type: notifier.EventOrdersUpdated})
	return nil
}
