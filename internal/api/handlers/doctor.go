package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/api/middleware"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	service "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type DoctorHandler struct {
	doctorService service.DoctorService
	validator     *validator.Validate
}

func NewDoctorHandler(doctorService service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService, validator: validator.New()}
}

func (h *DoctorHandler) CreateDoctor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateDoctorRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create doctor input")
			return
		}

		doctor, err := h.doctorService.CreateDoctor(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create doctor", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Doctor created", slog.String("doctorId", doctor.ID.String()))
		response.Success(w, http.StatusCreated, doctor)
	}
}

func (h *DoctorHandler) GetDoctor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid doctor id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		doctor, err := h.doctorService.GetDoctorByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get doctor", slog.String("doctorId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, doctor)
	}
}

func (h *DoctorHandler) ListDoctors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query()

		filter := &models.DoctorFilter{
			Specialization: query.Get("specialization"),
			Category:       query.Get("category"),
			Search:         query.Get("search"),
		}

		if raw := query.Get("available"); raw != "" {
			if available, err := strconv.ParseBool(raw); err == nil {
				filter.Available = &available
			}
		}

		doctors, err := h.doctorService.ListDoctors(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list doctors", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, doctors)
	}
}

// GetAvailability lists the already-booked slot times for a doctor on a date,
// so the booking UI can grey them out.
func (h *DoctorHandler) GetAvailability() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid doctor id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			logger.Warn("Missing date for availability lookup", slog.String("doctorId", id.String()))
			response.Error(w, errors.BadRequestError("Query parameter 'date' is required"))

			return
		}

		availability, err := h.doctorService.GetAvailability(r.Context(), id, date)
		if err != nil {
			logger.Error("Failed to get availability", slog.String("doctorId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, availability)
	}
}

func (h *DoctorHandler) UpdateDoctor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid doctor id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.UpdateDoctorRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update doctor input")
			return
		}

		doctor, err := h.doctorService.UpdateDoctor(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update doctor", slog.String("doctorId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Doctor updated", slog.String("doctorId", id.String()))
		response.Success(w, http.StatusOK, doctor)
	}
}

func (h *DoctorHandler) DeleteDoctor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid doctor id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if err := h.doctorService.DeleteDoctor(r.Context(), id); err != nil {
			logger.Error("Failed to delete doctor", slog.String("doctorId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Doctor deleted", slog.String("doctorId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "Doctor deleted"})
	}
}
