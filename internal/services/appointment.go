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

type AppointmentService interface {
	BookAppointment(ctx context.Context, req *models.BookAppointmentRequest) (*models.Appointment, error)
	GetAppointmentByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *models.UpdateAppointmentRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.AppointmentStatus) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	ListAppointments(ctx context.Context, filter *models.AppointmentFilter) ([]*models.Appointment, error)
}

type appointmentService struct {
	repo       repository.AppointmentRepository
	doctorRepo repository.DoctorRepository
	notifier   NotificationService
}

func NewAppointmentService(repo repository.AppointmentRepository, doctorRepo repository.DoctorRepository, notifier NotificationService) AppointmentService {
	return &appointmentService{repo: repo, doctorRepo: doctorRepo, notifier: notifier}
}

// BookAppointment books a slot for a doctor. The availability query is only a
// fast path; the partial unique index on active appointments is what actually
// prevents two concurrent requests from double-booking, and its violation is
// mapped to the same conflict error.
func (s *appointmentService) BookAppointment(ctx context.Context, req *models.BookAppointmentRequest) (*models.Appointment, error) {
	logger := middleware.LoggerFromContext(ctx)

	doctor, err := s.doctorRepo.GetDoctorByID(ctx, req.DoctorID)
	if err != nil {
		return nil, errors.NotFoundError("Doctor not found").WithError(err)
	}

	taken, err := s.repo.SlotTaken(ctx, req.DoctorID, req.Date, req.Time)
	if err != nil {
		return nil, errors.DatabaseError("Failed to check slot availability").WithError(err)
	}

	if taken {
		return nil, errors.SlotConflictError("This time slot is already booked")
	}

	appointment := &models.Appointment{
		AppointmentNumber: utils.GenerateNumber("APT"),
		PatientID:         req.PatientID,
		PatientName:       req.PatientName,
		PatientEmail:      req.PatientEmail,
		PatientPhone:      req.PatientPhone,
		DoctorID:          req.DoctorID,
		DoctorName:        doctor.Name,
		Date:              req.Date,
		Time:              req.Time,
		Symptoms:          req.Symptoms,
		Notes:             req.Notes,
		Status:            models.AppointmentStatusPending,
	}

	if err := s.repo.CreateAppointment(ctx, appointment); err != nil {
		if repository.IsUniqueViolation(err, repository.SlotConstraint) {
			logger.Warn("Slot lost to a concurrent booking",
				slog.String("doctorId", req.DoctorID.String()),
				slog.String("date", req.Date),
				slog.String("time", req.Time))

			return nil, errors.SlotConflictError("This time slot is already booked").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to book appointment").WithError(err)
	}

	s.notifyBestEffort(ctx, appointment.PatientEmail,
		"Appointment received: "+appointment.AppointmentNumber,
		fmt.Sprintf("Dear %s,\n\nYour appointment with %s on %s at %s has been received and is pending confirmation.\n\nReference: %s",
			appointment.PatientName, appointment.DoctorName, appointment.Date, appointment.Time, appointment.AppointmentNumber))

	return appointment, nil
}

func (s *appointmentService) GetAppointmentByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	appointment, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Appointment not found").WithError(err)
	}

	return appointment, nil
}

func (s *appointmentService) UpdateAppointment(ctx context.Context, id uuid.UUID, req *models.UpdateAppointmentRequest) (*models.Appointment, error) {
	appointment, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Appointment not found").WithError(err)
	}

	reschedule := false

	if req.DoctorID != nil && *req.DoctorID != appointment.DoctorID {
		doctor, err := s.doctorRepo.GetDoctorByID(ctx, *req.DoctorID)
		if err != nil {
			return nil, errors.NotFoundError("Doctor not found").WithError(err)
		}

		appointment.DoctorID = doctor.ID
		appointment.DoctorName = doctor.Name
		reschedule = true
	}

	if req.Date != nil && *req.Date != appointment.Date {
		appointment.Date = *req.Date
		reschedule = true
	}

	if req.Time != nil && *req.Time != appointment.Time {
		appointment.Time = *req.Time
		reschedule = true
	}

	if req.PatientName != nil {
		appointment.PatientName = *req.PatientName
	}

	if req.PatientEmail != nil {
		appointment.PatientEmail = *req.PatientEmail
	}

	if req.PatientPhone != nil {
		appointment.PatientPhone = *req.PatientPhone
	}

	if req.DoctorName != nil {
		appointment.DoctorName = *req.DoctorName
	}

	if req.Symptoms != nil {
		appointment.Symptoms = *req.Symptoms
	}

	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if req.Status != nil {
		appointment.Status = *req.Status
	}

	// Moving an active appointment to another slot must honor the same
	// uniqueness rule as booking.
	if reschedule && (appointment.Status == models.AppointmentStatusPending || appointment.Status == models.AppointmentStatusConfirmed) {
		taken, err := s.repo.SlotTaken(ctx, appointment.DoctorID, appointment.Date, appointment.Time)
		if err != nil {
			return nil, errors.DatabaseError("Failed to check slot availability").WithError(err)
		}

		if taken {
			return nil, errors.SlotConflictError("This time slot is already booked")
		}
	}

	if err := s.repo.UpdateAppointment(ctx, appointment); err != nil {
		if repository.IsUniqueViolation(err, repository.SlotConstraint) {
			return nil, errors.SlotConflictError("This time slot is already booked").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update appointment").WithError(err)
	}

	return appointment, nil
}

// UpdateStatus overwrites the status unconditionally within the fixed
// vocabulary. The admin back-office owns the transition discipline.
func (s *appointmentService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AppointmentStatus) (*models.Appointment, error) {
	appointment, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Appointment not found").WithError(err)
	}

	if appointment.Status != status {
		if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
			return nil, errors.DatabaseError("Failed to update appointment status").WithError(err)
		}

		appointment.Status = status

		s.notifyBestEffort(ctx, appointment.PatientEmail,
			"Appointment update: "+appointment.AppointmentNumber,
			fmt.Sprintf("Dear %s,\n\nYour appointment on %s at %s is now %s.",
				appointment.PatientName, appointment.Date, appointment.Time, status))
	}

	return appointment, nil
}

// CancelAppointment is idempotent: cancelling an already-cancelled appointment
// returns it unchanged.
func (s *appointmentService) CancelAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	appointment, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Appointment not found").WithError(err)
	}

	if appointment.Status == models.AppointmentStatusCancelled {
		return appointment, nil
	}

	return s.UpdateStatus(ctx, id, models.AppointmentStatusCancelled)
}

func (s *appointmentService) ListAppointments(ctx context.Context, filter *models.AppointmentFilter) ([]*models.Appointment, error) {
	appointments, err := s.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch appointments").WithError(err)
	}

	return appointments, nil
}

func (s *appointmentService) notifyBestEffort(ctx context.Context, recipient, subject, content string) {
	if s.notifier == nil {
		return
	}

	logger := middleware.LoggerFromContext(ctx)

	if err := s.notifier.SendEmail(ctx, &models.EmailNotificationRequest{
		Recipient: recipient,
		Subject:   subject,
		Content:   content,
	}); err != nil {
		// Email failures never fail the booking.
		logger.Warn("Failed to send appointment email", slog.Any("error", err))
	}
}
