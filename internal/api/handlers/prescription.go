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

type PrescriptionHandler struct {
	prescriptionService service.PrescriptionService
	validator           *validator.Validate
}

func NewPrescriptionHandler(prescriptionService service.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptionService: prescriptionService, validator: validator.New()}
}

func (h *PrescriptionHandler) SubmitPrescription() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.SubmitPrescriptionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid submit prescription input")
			return
		}

		prescription, err := h.prescriptionService.SubmitPrescription(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to submit prescription", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Prescription submitted",
			slog.String("prescriptionId", prescription.ID.String()),
			slog.String("prescriptionNumber", prescription.PrescriptionNumber))
		response.Success(w, http.StatusCreated, prescription)
	}
}

func (h *PrescriptionHandler) GetPrescription() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid prescription id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		prescription, err := h.prescriptionService.GetPrescriptionByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get prescription", slog.String("prescriptionId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, prescription)
	}
}

func (h *PrescriptionHandler) ListPrescriptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query()

		filter := &models.PrescriptionFilter{
			Status: models.PrescriptionStatus(query.Get("status")),
		}

		if raw := query.Get("patientId"); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				filter.PatientID = &id
			}
		}

		prescriptions, err := h.prescriptionService.ListPrescriptions(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list prescriptions", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, prescriptions)
	}
}

func (h *PrescriptionHandler) UpdatePrescriptionStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid prescription id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.UpdatePrescriptionStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update prescription status input")
			return
		}

		prescription, err := h.prescriptionService.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Error("Failed to update prescription status",
				slog.String("prescriptionId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Prescription status updated",
			slog.String("prescriptionId", id.String()), slog.String("status", string(req.Status)))
		response.Success(w, http.StatusOK, prescription)
	}
}
