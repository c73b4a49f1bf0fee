package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/api/middleware"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	service "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentService service.AppointmentService
	validator          *validator.Validate
}

func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService, validator: validator.New()}
}

// BookAppointment creates a pending booking. A taken slot answers 409 whether
// it is caught by the availability check or by the storage index on insert.
func (h *AppointmentHandler) BookAppointment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.BookAppointmentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid book appointment input")
			return
		}

		appointment, err := h.appointmentService.BookAppointment(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to book appointment", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Appointment booked",
			slog.String("appointmentId", appointment.ID.String()),
			slog.String("appointmentNumber", appointment.AppointmentNumber))
		response.Success(w, http.StatusCreated, appointment)
	}
}

func (h *AppointmentHandler) GetAppointment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid appointment id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		appointment, err := h.appointmentService.GetAppointmentByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get appointment", slog.String("appointmentId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, appointment)
	}
}

func (h *AppointmentHandler) ListAppointments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query()

		filter := &models.AppointmentFilter{
			Status: models.AppointmentStatus(query.Get("status")),
			Date:   query.Get("date"),
		}

		if raw := query.Get("doctorId"); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				filter.DoctorID = &id
			}
		}

		if raw := query.Get("patientId"); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				filter.PatientID = &id
			}
		}

		appointments, err := h.appointmentService.ListAppointments(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list appointments", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, appointments)
	}
}

func (h *AppointmentHandler) UpdateAppointment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid appointment id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.UpdateAppointmentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update appointment input")
			return
		}

		appointment, err := h.appointmentService.UpdateAppointment(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update appointment", slog.String("appointmentId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Appointment updated", slog.String("appointmentId", id.String()))
		response.Success(w, http.StatusOK, appointment)
	}
}

func (h *AppointmentHandler) UpdateAppointmentStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid appointment id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.UpdateAppointmentStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update appointment status input")
			return
		}

		appointment, err := h.appointmentService.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Error("Failed to update appointment status",
				slog.String("appointmentId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Appointment status updated",
			slog.String("appointmentId", id.String()), slog.String("status", string(req.Status)))
		response.Success(w, http.StatusOK, appointment)
	}
}

// CancelAppointment soft-cancels a booking. Cancelling an already cancelled
// appointment is a no-op success.
func (h *AppointmentHandler) CancelAppointment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid appointment id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		appointment, err := h.appointmentService.CancelAppointment(r.Context(), id)
		if err != nil {
			logger.Error("Failed to cancel appointment", slog.String("appointmentId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Appointment cancelled", slog.String("appointmentId", id.String()))
		response.Success(w, http.StatusOK, appointment)
	}
}
