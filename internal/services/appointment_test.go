package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	repository "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories/mocks"
	service "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services"
	serviceMocks "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAppointmentServiceTest(t *testing.T) (service.AppointmentService, *mocks.AppointmentRepository, *mocks.DoctorRepository, *serviceMocks.NotificationService) {
	mockRepo := mocks.NewAppointmentRepository(t)
	mockDoctorRepo := mocks.NewDoctorRepository(t)
	mockNotifier := serviceMocks.NewNotificationService(t)
	appointmentService := service.NewAppointmentService(mockRepo, mockDoctorRepo, mockNotifier)

	return appointmentService, mockRepo, mockDoctorRepo, mockNotifier
}

func bookingRequest(doctorID uuid.UUID) *models.BookAppointmentRequest {
	return &models.BookAppointmentRequest{
		PatientName:  "Kumari Silva",
		PatientEmail: "kumari@example.com",
		PatientPhone: "+94771234567",
		DoctorID:     doctorID,
		Date:         "2025-03-10",
		Time:         "10:30",
		Symptoms:     "Persistent cough",
	}
}

func TestBookAppointment_Success(t *testing.T) {
	// Arrange
	appointmentService, mockRepo, mockDoctorRepo, mockNotifier := setupAppointmentServiceTest(t)
	ctx := context.Background()
	doctorID := uuid.New()

	mockDoctorRepo.On("GetDoctorByID", ctx, doctorID).Return(&models.Doctor{ID: doctorID, Name: "Dr. Fernando"}, nil).Once()
	mockRepo.On("SlotTaken", ctx, doctorID, "2025-03-10", "10:30").Return(false, nil).Once()
	mockRepo.On("CreateAppointment", ctx, mock.AnythingOfType("*models.Appointment")).Return(nil).Run(func(args mock.Arguments) {
		apptArg := args.Get(1).(*models.Appointment)
		assert.Equal(t, models.AppointmentStatusPending, apptArg.Status)
		assert.Equal(t, "Dr. Fernando", apptArg.DoctorName)
		assert.NotEmpty(t, apptArg.AppointmentNumber)
	}).Once()
	mockNotifier.On("SendEmail", ctx, mock.AnythingOfType("*models.EmailNotificationRequest")).Return(nil).Once()

	// Act
	appointment, err := appointmentService.BookAppointment(ctx, bookingRequest(doctorID))

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, appointment)
	assert.Equal(t, models.AppointmentStatusPending, appointment.Status)
	assert.Equal(t, "Dr. Fernando", appointment.DoctorName)
}

func TestBookAppointment_DoctorNotFound(t *testing.T) {
	// Arrange
	appointmentService, mockRepo, mockDoctorRepo, _ := setupAppointmentServiceTest(t)
	ctx := context.Background()
	doctorID := uuid.New()

	mockDoctorRepo.On("GetDoctorByID", ctx, doctorID).Return(nil, errors.New("sql: no rows in result set")).Once()

	// Act
	appointment, err := appointmentService.BookAppointment(ctx, bookingRequest(doctorID))

	// Assert
	assert.Nil(t, appointment)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)

	mockRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestBookAppointment_SlotAlreadyTaken(t *testing.T) {
	// Arrange
	appointmentService, mockRepo, mockDoctorRepo, _ := setupAppointmentServiceTest(t)
	ctx := context.Background()
	doctorID := uuid.New()

	mockDoctorRepo.On("GetDoctorByID", ctx, doctorID).Return(&models.Doctor{ID: doctorID, Name: "Dr. Fernando"}, nil).Once()
	mockRepo.On("SlotTaken", ctx, doctorID, "2025-03-10", "10:30").Return(true, nil).Once()

	// Act
	appointment, err := appointmentService.BookAppointment(ctx, bookingRequest(doctorID))

	// Assert
	assert.Nil(t, appointment)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeSlotConflict, appErr.Code)

	mockRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

// Two requests can pass the availability check together; the loser of the
// insert race must still get a slot conflict, not an internal error.
func TestBookAppointment_ConcurrentInsertRace(t *testing.T) {
	// Arrange
	appointmentService, mockRepo, mockDoctorRepo, _ := setupAppointmentServiceTest(t)
	ctx := context.Background()
	doctorID := uuid.New()

	mockDoctorRepo.On("GetDoctorByID", ctx, doctorID).Return(&models.Doctor{ID: doctorID, Name: "Dr. Fernando"}, nil).Once()
	mockRepo.On("SlotTaken", ctx, doctorID, "2025-03-10", "10:30").Return(false, nil).Once()

	pqErr := &pq.Error{Code: "23505", Constraint: repository.SlotConstraint}
	mockRepo.On("CreateAppointment", ctx, mock.AnythingOfType("*models.Appointment")).Return(pqErr).Once()

	// Act
	appointment, err := appointmentService.BookAppointment(ctx, bookingRequest(doctorID))

	// Assert
	assert.Nil(t, appointment)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeSlotConflict, appErr.Code)
}

func TestUpdateAppointment_RescheduleChecksSlot(t *testing.T) {
	// Arrange
	appointmentService, mockRepo, _, _ := setupAppointmentServiceTest(t)
	ctx := context.Background()
	appointmentID := uuid.New()
	doctorID := uuid.New()

	existing := &models.Appointment{
		ID:       appointmentID,
		DoctorID: doctorID,
		Date:     "2025-03-10",
		Time:     "10:30",
		Status:   models.AppointmentStatusConfirmed,
	}

	newTime := "14:00"

	mockRepo.On("GetAppointmentByID", ctx, appointmentID).Return(existing, nil).Once()
	mockRepo.On("SlotTaken", ctx, doctorID, "2025-03-10", newTime).Return(true, nil).Once()

	// Act
	appointment, err := appointmentService.UpdateAppointment(ctx, appointmentID, &models.UpdateAppointmentRequest{Time: &newTime})

	// Assert
	assert.Nil(t, appointment)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeSlotConflict, appErr.Code)

	mockRepo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestUpdateAppointmentStatus_SendsEmailOnChange(t *testing.T) {
	// Arrange
	appointmentService, mockRepo, _, mockNotifier := setupAppointmentServiceTest(t)
	ctx := context.Background()
	appointmentID := uuid.New()

	existing := &models.Appointment{
		ID:           appointmentID,
		PatientName:  "Kumari Silva",
		PatientEmail: "kumari@example.com",
		Date:         "2025-03-10",
		Time:         "10:30",
		Status:       models.AppointmentStatusPending,
	}

	mockRepo.On("GetAppointmentByID", ctx, appointmentID).Return(existing, nil).Once()
	mockRepo.On("UpdateStatus", ctx, appointmentID, models.AppointmentStatusConfirmed).Return(nil).Once()
	mockNotifier.On("SendEmail", ctx, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
		return req.Recipient == "kumari@example.com"
	})).Return(nil).Once()

	// Act
	appointment, err := appointmentService.UpdateStatus(ctx, appointmentID, models.AppointmentStatusConfirmed)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, appointment)
	assert.Equal(t, models.AppointmentStatusConfirmed, appointment.Status)
}

func TestCancelAppointment_Success(t *testing.T) {
	// Arrange
	appointmentService, mockRepo, _, mockNotifier := setupAppointmentServiceTest(t)
	ctx := context.Background()
	appointmentID := uuid.New()

	existing := &models.Appointment{
		ID:           appointmentID,
		PatientEmail: "kumari@example.com",
		Status:       models.AppointmentStatusConfirmed,
	}

	// CancelAppointment loads once itself and once through UpdateStatus.
	mockRepo.On("GetAppointmentByID", ctx, appointmentID).Return(existing, nil).Twice()
	mockRepo.On("UpdateStatus", ctx, appointmentID, models.AppointmentStatusCancelled).Return(nil).Once()
	mockNotifier.On("SendEmail", ctx, mock.AnythingOfType("*models.EmailNotificationRequest")).Return(nil).Once()

	// Act
	appointment, err := appointmentService.CancelAppointment(ctx, appointmentID)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, appointment)
	assert.Equal(t, models.AppointmentStatusCancelled, appointment.Status)
}

func TestCancelAppointment_AlreadyCancelled(t *testing.T) {
	// Arrange
	appointmentService, mockRepo, _, mockNotifier := setupAppointmentServiceTest(t)
	ctx := context.Background()
	appointmentID := uuid.New()

	existing := &models.Appointment{ID: appointmentID, Status: models.AppointmentStatusCancelled}
	mockRepo.On("GetAppointmentByID", ctx, appointmentID).Return(existing, nil).Once()

	// Act
	appointment, err := appointmentService.CancelAppointment(ctx, appointmentID)

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, appointment)
	assert.Equal(t, models.AppointmentStatusCancelled, appointment.Status)

	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	mockNotifier.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}

func TestListAppointments_RepositoryError(t *testing.T) {
	// Arrange
	appointmentService, mockRepo, _, _ := setupAppointmentServiceTest(t)
	ctx := context.Background()
	filter := &models.AppointmentFilter{Status: models.AppointmentStatusPending}

	mockRepo.On("ListAppointments", ctx, filter).Return(nil, errors.New("connection refused")).Once()

	// Act
	appointments, err := appointmentService.ListAppointments(ctx, filter)

	// Assert
	assert.Nil(t, appointments)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
}
