package main

import (
	"context"
	"log"
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/notifier"
	repo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// 初期メニュー。テーブルが空のときだけ入れる。
func seedMenu(ctx context.Context, menuRepo repo.MenuItemRepository) error {
	count, err := menuRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	types := model.OrderTypes{"Half", "Full", "1 Plate"}
	defaults := []model.MenuItem{
		{ID: "m1", Name: "Pizza", Price: 200, Category: "Main Course", Description: "Delicious pizza", OrderTypes: types, IsActive: true},
		{ID: "m2", Name: "Burger", Price: 120, Category: "Fast Food", Description: "Juicy burger", OrderTypes: types, IsActive: true},
		{ID: "m3", Name: "Pasta", Price: 150, Category: "Main Course", Description: "Italian pasta", OrderTypes: types, IsActive: true},
		{ID: "m4", Name: "Fries", Price: 80, Category: "Sides", Description: "Crispy fries", OrderTypes: types, IsActive: true},
	}
	for _, item := range defaults {
		if err := menuRepo.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	//.envはあれば読む（必須チェックはconfig側）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.MenuItem{},
		&model.Order{},
		&model.Bill{},
		&model.ArchivedBill{},
	); err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	menuRepo := infraRepo.NewMenuItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	if err := seedMenu(context.Background(), menuRepo); err != nil {
		log.Fatal(err)
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//通知ハブはプロセスで1つ
	hub := notifier.NewHub()

	//Usecase生成
	menuUC := usecase.NewMenuUsecase(menuRepo, hub, idGen)
	orderUC := usecase.NewOrderUsecase(orderRepo, hub, idGen, clock)
	billingUC := usecase.NewBillingUsecase(txm, hub, idGen, clock)
	archiveUC := usecase.NewArchiveUsecase(txm, hub, clock)

	//Handler生成
	handlers := server.Handlers{
		Menu:    handler.NewMenuHandler(menuUC),
		Order:   handler.NewOrderHandler(orderUC),
		Bill:    handler.NewBillHandler(billingUC),
		Archive: handler.NewArchiveHandler(archiveUC),
		Events:  handler.NewEventsHandler(hub),
		Upload:  handler.NewUploadHandler(cfg.UploadDir),
	}

	//Server起動
	addr := ":" + cfg.Port
	if cfg.Port[0] == ':' {
		addr = cfg.Port
	}

	if err := server.Start(addr, cfg.UploadDir, handlers); err != nil {
		log.Fatal(err)
	}
}
