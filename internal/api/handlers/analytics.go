package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/api/middleware"
	service "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils/response"
)

// AnalyticsHandler serves the admin dashboard aggregations. All endpoints are
// read-only and cached behind the service.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}

	return value
}

func (h *AnalyticsHandler) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		stats, err := h.analyticsService.DashboardStats(r.Context())
		if err != nil {
			logger.Error("Failed to load dashboard stats", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}

func (h *AnalyticsHandler) Sales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		points, err := h.analyticsService.SalesByDay(r.Context(), queryInt(r, "days"))
		if err != nil {
			logger.Error("Failed to load sales", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, points)
	}
}

func (h *AnalyticsHandler) ProductsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		counts, err := h.analyticsService.ProductsByCategory(r.Context())
		if err != nil {
			logger.Error("Failed to load category counts", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, counts)
	}
}

func (h *AnalyticsHandler) AppointmentStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		stats, err := h.analyticsService.AppointmentStats(r.Context())
		if err != nil {
			logger.Error("Failed to load appointment stats", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}

func (h *AnalyticsHandler) TopProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.analyticsService.TopProducts(r.Context(), queryInt(r, "limit"))
		if err != nil {
			logger.Error("Failed to load top products", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *AnalyticsHandler) RecentActivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		activity, err := h.analyticsService.RecentActivity(r.Context(), queryInt(r, "limit"))
		if err != nil {
			logger.Error("Failed to load recent activity", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, activity)
	}
}
