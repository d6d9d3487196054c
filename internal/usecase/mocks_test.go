package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/notifier"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders        repo.OrderRepository
	bills         repo.BillRepository
	archivedBills repo.ArchivedBillRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository               { return r.orders }
func (r *TxReposMock) Bills() repo.BillRepository                 { return r.bills }
func (r *TxReposMock) ArchivedBills() repo.ArchivedBillRepository { return r.archivedBills }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByTable(ctx context.Context, tableName string) ([]model.Order, error) {
	args := m.Called(ctx, tableName)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateStatusByTable(ctx context.Context, tableName string, status model.OrderStatus) error {
	args := m.Called(ctx, tableName, status)
	return args.Error(0)
}

func (m *OrderRepoMock) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type BillRepoMock struct{ mock.Mock }

func (m *BillRepoMock) Insert(ctx context.Context, bill model.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *BillRepoMock) List(ctx context.Context, f repo.BillRangeFilter) ([]model.Bill, error) {
	args := m.Called(ctx, f)
	bills, _ := args.Get(0).([]model.Bill)
	return bills, args.Error(1)
}

func (m *BillRepoMock) DeleteByIDs(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type ArchivedBillRepoMock struct{ mock.Mock }

func (m *ArchivedBillRepoMock) Insert(ctx context.Context, bill model.ArchivedBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *ArchivedBillRepoMock) List(ctx context.Context, f repo.BillRangeFilter) ([]model.ArchivedBill, error) {
	args := m.Called(ctx, f)
	bills, _ := args.Get(0).([]model.ArchivedBill)
	return bills, args.Error(1)
}

func (m *ArchivedBillRepoMock) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MenuRepoMock struct{ mock.Mock }

func (m *MenuRepoMock) ListActive(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepoMock) ListAll(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepoMock) FindByID(ctx context.Context, id string) (model.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *MenuRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MenuRepoMock) Create(ctx context.Context, item model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuRepoMock) Update(ctx context.Context, item model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =====================
// Publisher / IDGenerator / Clock fakes
// =====================

// PublisherSpy は受け取ったイベントを発行順に記録する
type PublisherSpy struct {
	Events []notifier.Event
}

func (p *PublisherSpy) Publish(ev notifier.Event) {
	p.Events = append(p.Events, ev)
}

func (p *PublisherSpy) Types() []notifier.EventType {
	types := make([]notifier.EventType, 0, len(p.Events))
	for _, ev := range p.Events {
		types = append(types, ev.Type)
	}
	return types
}

type fixedIDGen struct{ id string }

func (g *fixedIDGen) NewID() string { return g.id }

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

// =====================
// Helper: error contains（HTTPErrorの実装詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
