package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/api/middleware"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	repository "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils"
	"github.com/google/uuid"
)

type PrescriptionService interface {
	SubmitPrescription(ctx context.Context, req *models.SubmitPrescriptionRequest) (*models.Prescription, error)
	GetPrescriptionByID(ctx context.Context, id uuid.UUID) (*models.Prescription, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.PrescriptionStatus) (*models.Prescription, error)
	ListPrescriptions(ctx context.Context, filter *models.PrescriptionFilter) ([]*models.Prescription, error)
}

type prescriptionService struct {
	repo     repository.PrescriptionRepository
	notifier NotificationService
}

func NewPrescriptionService(repo repository.PrescriptionRepository, notifier NotificationService) PrescriptionService {
	return &prescriptionService{repo: repo, notifier: notifier}
}

func (s *prescriptionService) SubmitPrescription(ctx context.Context, req *models.SubmitPrescriptionRequest) (*models.Prescription, error) {
	prescription := &models.Prescription{
		PrescriptionNumber: utils.GenerateNumber("RX"),
		PatientID:          req.PatientID,
		PatientName:        req.PatientName,
		PatientEmail:       req.PatientEmail,
		PatientPhone:       req.PatientPhone,
		PatientAge:         req.PatientAge,
		Address:            req.Address,
		Notes:              req.Notes,
		Files:              req.Files,
		Status:             models.PrescriptionStatusPending,
	}

	if err := s.repo.CreatePrescription(ctx, prescription); err != nil {
		return nil, errors.DatabaseError("Failed to submit prescription").WithError(err)
	}

	s.notifyBestEffort(ctx, prescription.PatientEmail,
		"Prescription received: "+prescription.PrescriptionNumber,
		fmt.Sprintf("Dear %s,\n\nYour prescription has been received and is being reviewed by our pharmacist.\n\nReference: %s",
			prescription.PatientName, prescription.PrescriptionNumber))

	return prescription, nil
}

func (s *prescriptionService) GetPrescriptionByID(ctx context.Context, id uuid.UUID) (*models.Prescription, error) {
	prescription, err := s.repo.GetPrescriptionByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Prescription not found").WithError(err)
	}

	return prescription, nil
}

func (s *prescriptionService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PrescriptionStatus) (*models.Prescription, error) {
	prescription, err := s.repo.GetPrescriptionByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Prescription not found").WithError(err)
	}

	if prescription.Status != status {
		if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
			return nil, errors.DatabaseError("Failed to update prescription status").WithError(err)
		}

		prescription.Status = status

		s.notifyBestEffort(ctx, prescription.PatientEmail,
			"Prescription update: "+prescription.PrescriptionNumber,
			fmt.Sprintf("Dear %s,\n\nYour prescription %s has been %s.",
				prescription.PatientName, prescription.PrescriptionNumber, status))
	}

	return prescription, nil
}

func (s *prescriptionService) ListPrescriptions(ctx context.Context, filter *models.PrescriptionFilter) ([]*models.Prescription, error) {
	prescriptions, err := s.repo.ListPrescriptions(ctx, filter)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch prescriptions").WithError(err)
	}

	return prescriptions, nil
}

func (s *prescriptionService) notifyBestEffort(ctx context.Context, recipient, subject, content string) {
	if s.notifier == nil {
		return
	}

	logger := middleware.LoggerFromContext(ctx)

	if err := s.notifier.SendEmail(ctx, &models.EmailNotificationRequest{
		Recipient: recipient,
		Subject:   subject,
		Content:   content,
	}); err != nil {
		logger.Warn("Failed to send prescription email", slog.Any("error", err))
	}
}
