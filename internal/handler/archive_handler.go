package handler

import (
	"fmt"
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ArchiveHandler struct {
	uc *usecase.ArchiveUsecase
}

func NewArchiveHandler(uc *usecase.ArchiveUsecase) *ArchiveHandler {
	return &ArchiveHandler{uc: uc}
}

func (h *ArchiveHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/archive-bills", h.archive)
	e.GET("/api/archived-bills", h.list)
	e.DELETE("/api/archived-bills", h.deleteAll)
}

type ArchiveResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func (h *ArchiveHandler) archive(c echo.Context) error {
	f, ok := parseDateRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date range"})
	}

	count, err := h.uc.ArchiveBills(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ArchiveResult{
		Message: fmt.Sprintf("Archived %d bills.", count),
		Count:   count,
	})
}

func (h *ArchiveHandler) list(c echo.Context) error {
	f, ok := parseDateRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date range"})
	}

	out, err := h.uc.ListArchivedBills(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ArchiveHandler) deleteAll(c echo.Context) error {
	if err := h.uc.DeleteAllArchived(c.Request().Context()); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
