package repository

import (
	"context"

	"app/internal/domain/model"
)

// メニューの永続化（保存・取得）だけを約束。
type MenuItemRepository interface {
	ListActive(ctx context.Context) ([]model.MenuItem, error)
	ListAll(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id string) (model.MenuItem, error)
	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, item model.MenuItem) error
	Update(ctx context.Context, item model.MenuItem) error
	Delete(ctx context.Context, id string) error
}
