package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

const dateParamFormat = "2006-01-02"

// start/endクエリから期間を作る。endはその日の終わり（23:59:59.999）まで含める。
func parseDateRange(c echo.Context) (repo.BillRangeFilter, bool) {
	var f repo.BillRangeFilter

	if v := c.QueryParam("start"); v != "" {
		t, err := time.ParseInLocation(dateParamFormat, v, time.Local)
		if err != nil {
			return repo.BillRangeFilter{}, false
		}
		f.From = &t
	}
	if v := c.QueryParam("end"); v != "" {
		t, err := time.ParseInLocation(dateParamFormat, v, time.Local)
		if err != nil {
			return repo.BillRangeFilter{}, false
		}
		eod := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, time.Local)
		f.To = &eod
	}
	return f, true
}

type BillHandler struct {
	uc *usecase.BillingUsecase
}

func NewBillHandler(uc *usecase.BillingUsecase) *BillHandler {
	return &BillHandler{uc: uc}
}

func (h *BillHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/bills", h.list)
	e.GET("/api/bills.csv", h.exportCSV)
	e.POST("/api/bills", h.create)
}

func (h *BillHandler) create(c echo.Context) error {
	var req usecase.CreateBillInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateBill(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *BillHandler) list(c echo.Context) error {
	f, ok := parseDateRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date range"})
	}

	out, err := h.uc.ListBills(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 伝票一覧のCSVエクスポート（レジ締め用）
func (h *BillHandler) exportCSV(c echo.Context) error {
	f, ok := parseDateRange(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date range"})
	}

	bills, err := h.uc.ListBills(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "table", "paidAt", "subtotal", "tax", "service", "grandTotal"})
	for _, b := range bills {
		totals := totalsOrFallback(b.Totals, b.TotalAmount)
		_ = w.Write([]string{
			b.ID,
			b.TableName,
			b.PaidAt,
			formatAmount(totals.Subtotal),
			formatAmount(totals.Tax),
			formatAmount(totals.Service),
			formatAmount(totals.GrandTotal),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="bills.csv"`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

// totals_jsonを持たない旧データは合計額から埋める
func totalsOrFallback(t model.Totals, totalAmount float64) model.Totals {
	if t == (model.Totals{}) {
		return model.Totals{Subtotal: totalAmount, Tax: 0, Service: 0, GrandTotal: totalAmount}
	}
	return t
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
