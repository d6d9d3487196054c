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

func newArchiveFixture() (*usecase.ArchiveUsecase, *TxManagerMock, *BillRepoMock, *ArchivedBillRepoMock, *PublisherSpy, time.Time) {
	tx := new(TxManagerMock)
	billsRepo := new(BillRepoMock)
	archivedRepo := new(ArchivedBillRepoMock)
	events := new(PublisherSpy)

	tx.Repos = &TxReposMock{
		orders:        new(OrderRepoMock),
		bills:         billsRepo,
		archivedBills: archivedRepo,
	}

	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	uc := usecase.NewArchiveUsecase(tx, events, &fixedClock{t: now})
	return uc, tx, billsRepo, archivedRepo, events, now
}

func TestArchiveUsecase_ArchiveBills_MovesAll(t *testing.T) {
	uc, tx, billsRepo, archivedRepo, events, now := newArchiveFixture()

	bills := []model.Bill{
		{ID: "bill_1", TableName: "Table 1", TotalAmount: 115, PaidAt: "a", PaidAtISO: "2026-03-30T12:00:00.000Z"},
		{ID: "bill_2", TableName: "Table 2", TotalAmount: 230, PaidAt: "b", PaidAtISO: "2026-03-31T12:00:00.000Z"},
	}

	f := repo.BillRangeFilter{}
	tx.On("WithinTx", mock.Anything).Return(nil)
	billsRepo.On("List", mock.Anything, f).Return(bills, nil)

	var moved []model.ArchivedBill
	archivedRepo.On("Insert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { moved = append(moved, args.Get(1).(model.ArchivedBill)) }).
		Return(nil)
	billsRepo.On("DeleteByIDs", mock.Anything, []string{"bill_1", "bill_2"}).Return(nil)

	count, err := uc.ArchiveBills(context.Background(), f)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	//移動先にはarchivedAtが入る。他のフィールドはそのままコピー。
	assert.Len(t, moved, 2)
	for i, ab := range moved {
		assert.Equal(t, bills[i].ID, ab.ID)
		assert.Equal(t, bills[i].TableName, ab.TableName)
		assert.Equal(t, bills[i].TotalAmount, ab.TotalAmount)
		assert.Equal(t, bills[i].PaidAtISO, ab.PaidAtISO)
		assert.Equal(t, model.FormatISO(now), ab.ArchivedAt)
	}

	assert.Equal(t, []notifier.EventType{notifier.EventBillsUpdated, notifier.EventArchivedBillsUpdated}, events.Types())

	tx.AssertExpectations(t)
	billsRepo.AssertExpectations(t)
	archivedRepo.AssertExpectations(t)
}

func TestArchiveUsecase_ArchiveBills_EmptyMatch_NoOp(t *testing.T) {
	uc, tx, billsRepo, archivedRepo, events, _ := newArchiveFixture()

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2020, 1, 2, 23, 59, 59, 999_000_000, time.Local)
	f := repo.BillRangeFilter{From: &from, To: &to}

	tx.On("WithinTx", mock.Anything).Return(nil)
	billsRepo.On("List", mock.Anything, f).Return([]model.Bill{}, nil)

	count, err := uc.ArchiveBills(context.Background(), f)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	//0件は成功。アクティブ側は一切触らない。
	archivedRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	billsRepo.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything)

	//イベントはバッチ完了後に必ず出す
	assert.Equal(t, []notifier.EventType{notifier.EventBillsUpdated, notifier.EventArchivedBillsUpdated}, events.Types())
}

func TestArchiveUsecase_ArchiveBills_DeletesOnlyListedBills(t *testing.T) {
	uc, tx, billsRepo, archivedRepo, _, _ := newArchiveFixture()

	from := time.Date(2026, 3, 30, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 30, 23, 59, 59, 999_000_000, time.Local)
	f := repo.BillRangeFilter{From: &from, To: &to}

	//Listが返した1枚だけが移動対象。範囲に入る伝票が後から
	//コミットされても、読んでいない分は消してはいけない。
	bills := []model.Bill{{ID: "bill_1", PaidAtISO: "2026-03-30T12:00:00.000Z"}}

	tx.On("WithinTx", mock.Anything).Return(nil)
	billsRepo.On("List", mock.Anything, f).Return(bills, nil)
	archivedRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	billsRepo.On("DeleteByIDs", mock.Anything, []string{"bill_1"}).Return(nil)

	count, err := uc.ArchiveBills(context.Background(), f)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	//消す集合＝読んだ集合（ID指定のみ、範囲削除は使わない）
	billsRepo.AssertCalled(t, "DeleteByIDs", mock.Anything, []string{"bill_1"})
	billsRepo.AssertExpectations(t)
}

func TestArchiveUsecase_ArchiveBills_InsertFails_NoEvents(t *testing.T) {
	uc, tx, billsRepo, archivedRepo, events, _ := newArchiveFixture()

	f := repo.BillRangeFilter{}
	tx.On("WithinTx", mock.Anything).Return(nil)
	billsRepo.On("List", mock.Anything, f).Return([]model.Bill{{ID: "bill_1"}}, nil)
	archivedRepo.On("Insert", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := uc.ArchiveBills(context.Background(), f)
	assertErrContains(t, err, "db error")

	//失敗時は削除まで進まない（トランザクションでrollbackされる前提）
	billsRepo.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything)
	assert.Empty(t, events.Events)
}

func TestArchiveUsecase_DeleteAllArchived(t *testing.T) {
	uc, tx, _, archivedRepo, events, _ := newArchiveFixture()

	tx.On("WithinTx", mock.Anything).Return(nil)
	archivedRepo.On("DeleteAll", mock.Anything).Return(nil)

	err := uc.DeleteAllArchived(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []notifier.EventType{notifier.EventArchivedBillsUpdated}, events.Types())
}

func TestArchiveUsecase_ListArchivedBills(t *testing.T) {
	uc, tx, _, archivedRepo, _, _ := newArchiveFixture()

	f := repo.BillRangeFilter{}
	want := []model.ArchivedBill{{ID: "bill_1", ArchivedAt: "2026-04-01T10:00:00.000Z"}}

	tx.On("WithinTx", mock.Anything).Return(nil)
	archivedRepo.On("List", mock.Anything, f).Return(want, nil)

	got, err := uc.ListArchivedBills(context.Background(), f)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
