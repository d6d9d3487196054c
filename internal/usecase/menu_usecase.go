package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/notifier"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 盛り方の既定値
var defaultOrderTypes = model.OrderTypes{"Half", "Full", "1 Plate"}

type MenuUsecase struct {
	menuRepo repo.MenuItemRepository
	events   notifier.Publisher
	idGen    IDGenerator
}

// DI
func NewMenuUsecase(menuRepo repo.MenuItemRepository, events notifier.Publisher, idGen IDGenerator) *MenuUsecase {
	return &MenuUsecase{
		menuRepo: menuRepo,
		events:   events,
		idGen:    idGen,
	}
}

type MenuItemInput struct {
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	OrderTypes  model.OrderTypes `json:"order_types"`
	IsActive    *bool            `json:"isActive"`
}

func (u *MenuUsecase) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	items, err := u.menuRepo.ListActive(ctx)
	if err != nil {
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *MenuUsecase) ListMenuAdmin(ctx context.Context) ([]model.MenuItem, error) {
	items, err := u.menuRepo.ListAll(ctx)
	if err != nil {
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *MenuUsecase) CreateMenuItem(ctx context.Context, in MenuItemInput) (model.MenuItem, error) {
	if err := validateMenuInput(in); err != nil {
		return model.MenuItem{}, err
	}

	item := model.MenuItem{
		ID:          "m_" + u.idGen.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		OrderTypes:  orderTypesOrDefault(in.OrderTypes),
		IsActive:    true,
	}

	if err := u.menuRepo.Create(ctx, item); err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.events.Publish(notifier.Event{Type: notifier.EventMenuUpdated})
	return item, nil
}

func (u *MenuUsecase) UpdateMenuItem(ctx context.Context, id string, in MenuItemInput) (model.MenuItem, error) {
	if strings.TrimSpace(id) == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateMenuInput(in); err != nil {
		return model.MenuItem{}, err
	}

	//存在しないなら404（更新前に確認する）
	if _, err := u.menuRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "menu item not found")
		}
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	item := model.MenuItem{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		OrderTypes:  orderTypesOrDefault(in.OrderTypes),
		IsActive:    isActive,
	}

	if err := u.menuRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "menu item not found")
		}
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.events.Publish(notifier.Event{Type: notifier.EventMenuUpdated})
	return item, nil
}

func (u *MenuUsecase) DeleteMenuItem(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.menuRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "menu item not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.events.Publish(notifier.Event{Type: notifier.EventMenuUpdated})
	return nil
}

func validateMenuInput(in MenuItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "missing required fields")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "missing required fields")
	}
	if strings.TrimSpace(in.Category) == "" {
		return NewHTTPError(http.StatusBadRequest, "missing required fields")
	}
	return nil
}

func orderTypesOrDefault(o model.OrderTypes) model.OrderTypes {
	if len(o) == 0 {
		return defaultOrderTypes
	}
	return o
}
