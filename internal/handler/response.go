package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kaapi/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// dataResponse wraps list and detail payloads the way the dashboard
// frontend expects them.
type dataResponse struct {
	Data interface{} `json:"data"`
}

// Error writes a JSON error body with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

// writeServiceError maps service sentinel errors to HTTP responses.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNoFile):
		return Error(c, http.StatusBadRequest, "no file provided")
	case errors.Is(err, service.ErrInvalidType):
		return Error(c, http.StatusBadRequest, "invalid file type, please upload CSV or Excel files")
	case errors.Is(err, service.ErrFileTooLarge):
		return Error(c, http.StatusRequestEntityTooLarge, "file too large")
	case errors.Is(err, service.ErrInvalidFile):
		return Error(c, http.StatusBadRequest, "could not parse file")
	case errors.Is(err, service.ErrEmptyData):
		return Error(c, http.StatusBadRequest, "no data found in file")
	case errors.Is(err, service.ErrNoMessages):
		return Error(c, http.StatusBadRequest, "no messages provided")
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return Error(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrConflict):
		return Error(c, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrUpstream):
		return Error(c, http.StatusBadGateway, "upstream failure")
	default:
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}
