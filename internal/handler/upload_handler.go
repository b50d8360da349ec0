package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kaapi/backend/internal/model"
	"kaapi/backend/internal/service"
)

type UploadHandler struct {
	service  service.UploadService
	maxBytes int64
}

type uploadResponse struct {
	Success          bool    `json:"success"`
	Filename         string  `json:"filename"`
	RowCount         int64   `json:"rowCount"`
	SkippedRows      int64   `json:"skippedRows"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TransactionCount int64   `json:"transactionCount"`
	UploadDate       string  `json:"uploadDate"`
	Message          string  `json:"message"`
}

type uploadedFileResponse struct {
	ID         int64  `json:"id"`
	Filename   string `json:"filename"`
	FilePath   string `json:"file_path"`
	FileType   string `json:"file_type"`
	UploadDate string `json:"upload_date"`
	Processed  bool   `json:"processed"`
	RowCount   int64  `json:"row_count"`
}

func NewUploadHandler(service service.UploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{service: service, maxBytes: maxBytes}
}

func (h *UploadHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/upload", h.Upload)
	g.GET("/uploads", h.History)
}

func (h *UploadHandler) Upload(c echo.Context) error {
	req := c.Request()
	// Allow some slack over the file limit for multipart framing.
	req.Body = http.MaxBytesReader(c.Response().Writer, req.Body, h.maxBytes+(1<<20))

	file, err := c.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			return writeServiceError(c, service.ErrNoFile)
		}
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if file.Size > h.maxBytes {
		return writeServiceError(c, service.ErrFileTooLarge)
	}

	src, err := file.Open()
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, h.maxBytes+1))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	result, err := h.service.Process(req.Context(), service.Upload{
		Filename:     file.Filename,
		DeclaredType: file.Header.Get("Content-Type"),
		Content:      content,
		Date:         c.FormValue("date"),
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, uploadResponse{
		Success:          true,
		Filename:         result.Filename,
		RowCount:         result.RowCount,
		SkippedRows:      result.SkippedRows,
		TotalRevenue:     result.TotalRevenue.InexactFloat64(),
		TransactionCount: result.TransactionCount,
		UploadDate:       result.UploadDate.Format(time.RFC3339),
		Message:          "File processed and consolidated into dashboard.",
	})
}

func (h *UploadHandler) History(c echo.Context) error {
	files, err := h.service.History(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := make([]uploadedFileResponse, 0, len(files))
	for _, f := range files {
		resp = append(resp, toUploadedFileResponse(f))
	}
	return c.JSON(http.StatusOK, dataResponse{Data: resp})
}

func toUploadedFileResponse(f model.UploadedFile) uploadedFileResponse {
	return uploadedFileResponse{
		ID:         f.ID,
		Filename:   f.Filename,
		FilePath:   f.StoragePath,
		FileType:   string(f.Kind),
		UploadDate: f.UploadedAt.Format(time.RFC3339),
		Processed:  f.Processed,
		RowCount:   f.RowCount,
	}
}
