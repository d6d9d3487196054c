package handler

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// メニュー画像アップロードの上限
const maxUploadSize = 5 << 20 // 5MB

type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

func (h *UploadHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/upload-image", h.upload)
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	Filename string `json:"filename"`
}

func (h *UploadHandler) upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no image file provided"})
	}
	if fh.Size > maxUploadSize {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large, maximum size is 5MB"})
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "only image files are allowed"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	defer src.Close()

	name := fmt.Sprintf("menu-%d-%d%s",
		time.Now().UnixMilli(),
		rand.Intn(1_000_000_000),
		filepath.Ext(fh.Filename),
	)

	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, UploadResponse{
		Success:  true,
		ImageURL: "/uploads/" + name,
		Filename: name,
	})
}
