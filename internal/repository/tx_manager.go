package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	Bills() BillRepository
	ArchivedBills() ArchivedBillRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// アーカイブの一括移動はこの中で完結させる（途中状態を見せない）。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
