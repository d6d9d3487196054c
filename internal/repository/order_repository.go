package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 注文の永続化だけを約束。
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, orderID string) (model.Order, error)

	// ステータスを問わずテーブル単位で全件返す
	ListByTable(ctx context.Context, tableName string) ([]model.Order, error)

	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	// 会計時の一括Paid遷移。対象0件でもエラーにしない。
	UpdateStatusByTable(ctx context.Context, tableName string, status model.OrderStatus) error

	DeleteAll(ctx context.Context) error
}
