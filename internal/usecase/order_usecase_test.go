package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/notifier"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderFixture() (*usecase.OrderUsecase, *OrderRepoMock, *PublisherSpy) {
	ordersRepo := new(OrderRepoMock)
	events := new(PublisherSpy)
	now := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	uc := usecase.NewOrderUsecase(ordersRepo, events, &fixedIDGen{id: "fixed"}, &fixedClock{t: now})
	return uc, ordersRepo, events
}

func TestOrderUsecase_PlaceOrder_MissingTable(t *testing.T) {
	uc, ordersRepo, events := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		Table: " ",
		Items: model.LineItems{{Name: "Pizza", Price: 200, Quantity: 1}},
	})
	assertErrContains(t, err, "missing table or items")

	ordersRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, events.Events)
}

func TestOrderUsecase_PlaceOrder_EmptyItems(t *testing.T) {
	uc, _, _ := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{Table: "5"})
	assertErrContains(t, err, "missing table or items")
}

func TestOrderUsecase_PlaceOrder_InvalidItem(t *testing.T) {
	uc, _, _ := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		Table: "5",
		Items: model.LineItems{{Name: "Pizza", Price: -1, Quantity: 1}},
	})
	assertErrContains(t, err, "invalid price/quantity")

	_, err = uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		Table: "5",
		Items: model.LineItems{{Name: "Pizza", Price: 200, Quantity: 0}},
	})
	assertErrContains(t, err, "invalid price/quantity")
}

func TestOrderUsecase_PlaceOrder_ZeroTotalRejected(t *testing.T) {
	uc, _, _ := newOrderFixture()

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		Table: "5",
		Items: model.LineItems{{Name: "Water", Price: 0, Quantity: 2}},
	})
	assertErrContains(t, err, "invalid total price")
}

func TestOrderUsecase_PlaceOrder_Success(t *testing.T) {
	uc, ordersRepo, events := newOrderFixture()

	var created model.Order
	ordersRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(model.Order) }).
		Return(nil)

	out, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		Table: "table   3",
		Items: model.LineItems{
			{Name: "Pizza", Price: 100, Quantity: 1, OrderType: "Full"},
			{Name: "Fries", Price: 50, Quantity: 2},
		},
	})
	assert.NoError(t, err)

	assert.Equal(t, "ord_fixed", out.ID)
	//テーブル名は発注時点で正準化される
	assert.Equal(t, "Table 3", out.TableName)
	//合計はサーバ側で計算
	assert.Equal(t, 200.0, out.TotalPrice)
	assert.Equal(t, model.OrderStatusPlaced, out.Status)
	assert.Equal(t, out, created)

	assert.Equal(t, []notifier.EventType{notifier.EventOrdersUpdated}, events.Types())
	ordersRepo.AssertExpectations(t)
}

func TestOrderUsecase_UpdateStatus_MissingStatus(t *testing.T) {
	uc, _, _ := newOrderFixture()

	_, err := uc.UpdateStatus(context.Background(), "ord_1", usecase.UpdateOrderStatusInput{})
	assertErrContains(t, err, "missing status")
}

func TestOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	uc, _, _ := newOrderFixture()

	_, err := uc.UpdateStatus(context.Background(), "ord_1", usecase.UpdateOrderStatusInput{Status: "Cooked"})
	assertErrContains(t, err, "invalid status")
}

func TestOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	uc, ordersRepo, events := newOrderFixture()

	ordersRepo.On("UpdateStatus", mock.Anything, "ord_x", model.OrderStatusPreparing).Return(repo.ErrNotFound)

	_, err := uc.UpdateStatus(context.Background(), "ord_x", usecase.UpdateOrderStatusInput{Status: "Preparing"})
	assertErrContains(t, err, "order not found")
	assert.Empty(t, events.Events)
}

func TestOrderUsecase_UpdateStatus_Success(t *testing.T) {
	uc, ordersRepo, events := newOrderFixture()

	updated := model.Order{ID: "ord_1", TableName: "Table 2", Status: model.OrderStatusDelivered}
	ordersRepo.On("UpdateStatus", mock.Anything, "ord_1", model.OrderStatusDelivered).Return(nil)
	ordersRepo.On("FindByID", mock.Anything, "ord_1").Return(updated, nil)

	out, err := uc.UpdateStatus(context.Background(), "ord_1", usecase.UpdateOrderStatusInput{Status: "Delivered"})
	assert.NoError(t, err)
	assert.Equal(t, updated, out)
	assert.Equal(t, []notifier.EventType{notifier.EventOrdersUpdated}, events.Types())
	ordersRepo.AssertExpectations(t)
}

func TestOrderUsecase_DeleteAllOrders(t *testing.T) {
	uc, ordersRepo, events := newOrderFixture()

	ordersRepo.On("DeleteAll", mock.Anything).Return(nil)

	err := uc.DeleteAllOrders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []notifier.EventType{notifier.EventOrdersUpdated}, events.Types())
}
