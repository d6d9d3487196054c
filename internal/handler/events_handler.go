package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"app/internal/notifier"

	"github.com/labstack/echo/v4"
)

const (
	// クライアントの再接続間隔ヒント（ms）
	sseRetryMillis = 3000
	// 中間機器のアイドル切断を避けるためのping間隔
	sseKeepAliveInterval = 25 * time.Second
)

// /api/events のSSEエンドポイント。
// 接続中クライアントへ変更通知を流しっぱなしにする。
type EventsHandler struct {
	hub *notifier.Hub
}

func NewEventsHandler(hub *notifier.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

func (h *EventsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/events", h.stream)
}

func (h *EventsHandler) stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	fmt.Fprintf(res, "retry: %d\n\n", sseRetryMillis)
	res.Flush()

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	ticker := time.NewTicker(sseKeepAliveInterval)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			//切断検知は受け身（transport任せ）
			return nil

		case ev, ok := <-sub.Events():
			if !ok {
				return nil
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()

		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
