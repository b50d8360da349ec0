package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"kaapi/backend/internal/model"
	"kaapi/backend/internal/service"
)

type RevenueHandler struct {
	service service.RevenueService
}

type createRevenueRequest struct {
	Date           string  `json:"date"`
	DayOfWeek      string  `json:"day_of_week"`
	Revenue        float64 `json:"revenue"`
	Transactions   int64   `json:"transactions"`
	ConversionRate float64 `json:"conversion_rate"`
}

type revenueResponse struct {
	ID             int64   `json:"id"`
	Date           string  `json:"date"`
	DayOfWeek      string  `json:"day_of_week"`
	Revenue        float64 `json:"revenue"`
	Transactions   int64   `json:"transactions"`
	ConversionRate float64 `json:"conversion_rate"`
	CreatedAt      string  `json:"created_at"`
}

func NewRevenueHandler(service service.RevenueService) *RevenueHandler {
	return &RevenueHandler{service: service}
}

func (h *RevenueHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/revenue", h.List)
	g.POST("/revenue", h.Create)
}

func (h *RevenueHandler) List(c echo.Context) error {
	summaries, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := make([]revenueResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, toRevenueResponse(s))
	}
	return c.JSON(http.StatusOK, dataResponse{Data: resp})
}

func (h *RevenueHandler) Create(c echo.Context) error {
	var req createRevenueRequest
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request body")
	}

	created, err := h.service.Create(c.Request().Context(), service.RevenueInput{
		Date:           req.Date,
		DayOfWeek:      req.DayOfWeek,
		Revenue:        decimal.NewFromFloat(req.Revenue),
		Transactions:   req.Transactions,
		ConversionRate: req.ConversionRate,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dataResponse{Data: toRevenueResponse(*created)})
}

func toRevenueResponse(s model.DailyRevenueSummary) revenueResponse {
	return revenueResponse{
		ID:             s.ID,
		Date:           s.Date,
		DayOfWeek:      s.DayOfWeek,
		Revenue:        s.Revenue.InexactFloat64(),
		Transactions:   s.Transactions,
		ConversionRate: s.ConversionRate,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}
