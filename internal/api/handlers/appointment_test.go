package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/api/handlers"
	appErrors "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services/mocks"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/testutils"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookAppointment(t *testing.T) {
	mockAppointmentService := new(mocks.AppointmentService)
	appointmentHandler := handlers.NewAppointmentHandler(mockAppointmentService)
	doctorID := uuid.New()

	bookReq := models.BookAppointmentRequest{
		PatientName:  "Kumari Silva",
		PatientEmail: "kumari@example.com",
		DoctorID:     doctorID,
		Date:         "2025-03-10",
		Time:         "10:30",
	}

	t.Run("Success - Appointment Booked", func(t *testing.T) {
		// Arrange
		expectedAppointment := &models.Appointment{
			ID:                uuid.New(),
			AppointmentNumber: "APT-20250301-482931",
			PatientName:       bookReq.PatientName,
			PatientEmail:      bookReq.PatientEmail,
			DoctorID:          doctorID,
			DoctorName:        "Dr. Fernando",
			Date:              bookReq.Date,
			Time:              bookReq.Time,
			Status:            models.AppointmentStatusPending,
		}

		mockAppointmentService.On("BookAppointment", mock.Anything, mock.AnythingOfType("*models.BookAppointmentRequest")).Return(expectedAppointment, nil).Once()

		bodyBytes, _ := json.Marshal(bookReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/appointments", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		appointmentHandler.BookAppointment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var respAppointment models.Appointment
		err = json.Unmarshal(dataBytes, &respAppointment)
		assert.NoError(t, err)
		assert.Equal(t, expectedAppointment.ID, respAppointment.ID)
		assert.Equal(t, expectedAppointment.AppointmentNumber, respAppointment.AppointmentNumber)
		assert.Equal(t, models.AppointmentStatusPending, respAppointment.Status)

		mockAppointmentService.AssertExpectations(t)
	})

	t.Run("Failure - Slot Conflict", func(t *testing.T) {
		// Arrange
		mockAppointmentService.On("BookAppointment", mock.Anything, mock.AnythingOfType("*models.BookAppointmentRequest")).
			Return(nil, appErrors.SlotConflictError("This time slot is already booked")).Once()

		bodyBytes, _ := json.Marshal(bookReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/appointments", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		appointmentHandler.BookAppointment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeSlotConflict, resp.Error.Code)

		mockAppointmentService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid JSON Body", func(t *testing.T) {
		// Arrange
		// Drop calls recorded by earlier subtests so AssertNotCalled only sees this request.
		mockAppointmentService.Calls = nil
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/appointments", strings.NewReader("{not json"), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		appointmentHandler.BookAppointment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAppointmentService.AssertNotCalled(t, "BookAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Missing Required Fields", func(t *testing.T) {
		// Arrange
		bodyBytes, _ := json.Marshal(models.BookAppointmentRequest{PatientName: "Kumari Silva"})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/appointments", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		appointmentHandler.BookAppointment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.False(t, resp.Success)
	})
}

func TestGetAppointment(t *testing.T) {
	mockAppointmentService := new(mocks.AppointmentService)
	appointmentHandler := handlers.NewAppointmentHandler(mockAppointmentService)
	appointmentID := uuid.New()

	t.Run("Success - Appointment Found", func(t *testing.T) {
		// Arrange
		expectedAppointment := &models.Appointment{
			ID:     appointmentID,
			Status: models.AppointmentStatusConfirmed,
		}

		mockAppointmentService.On("GetAppointmentByID", mock.Anything, appointmentID).Return(expectedAppointment, nil).Once()

		pathParams := map[string]string{"id": appointmentID.String()}
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/appointments/"+appointmentID.String(), nil, pathParams)
		rr := httptest.NewRecorder()

		// Act
		appointmentHandler.GetAppointment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		mockAppointmentService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		// Arrange
		// Drop calls recorded by earlier subtests so AssertNotCalled only sees this request.
		mockAppointmentService.Calls = nil
		pathParams := map[string]string{"id": "not-a-uuid"}
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/appointments/not-a-uuid", nil, pathParams)
		rr := httptest.NewRecorder()

		// Act
		appointmentHandler.GetAppointment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAppointmentService.AssertNotCalled(t, "GetAppointmentByID", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockAppointmentService.On("GetAppointmentByID", mock.Anything, appointmentID).
			Return(nil, appErrors.NotFoundError("Appointment not found")).Once()

		pathParams := map[string]string{"id": appointmentID.String()}
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/appointments/"+appointmentID.String(), nil, pathParams)
		rr := httptest.NewRecorder()

		// Act
		appointmentHandler.GetAppointment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)

		mockAppointmentService.AssertExpectations(t)
	})
}

func TestUpdateAppointmentStatus(t *testing.T) {
	mockAppointmentService := new(mocks.AppointmentService)
	appointmentHandler := handlers.NewAppointmentHandler(mockAppointmentService)
	appointmentID := uuid.New()
	adminID := uuid.New()

	t.Run("Success - Status Updated", func(t *testing.T) {
		// Arrange
		expectedAppointment := &models.Appointment{ID: appointmentID, Status: models.AppointmentStatusConfirmed}

		mockAppointmentService.On("UpdateStatus", mock.Anything, appointmentID, models.AppointmentStatusConfirmed).
			Return(expectedAppointment, nil).Once()

		bodyBytes, _ := json.Marshal(models.UpdateAppointmentStatusRequest{Status: models.AppointmentStatusConfirmed})
		pathParams := map[string]string{"id": appointmentID.String()}
		req := testutils.CreateTestAdminRequest(http.MethodPatch, "/appointments/"+appointmentID.String()+"/status", bytes.NewReader(bodyBytes), adminID, pathParams)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		appointmentHandler.UpdateAppointmentStatus().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockAppointmentService.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Status Value", func(t *testing.T) {
		// Arrange
		// Drop calls recorded by earlier subtests so AssertNotCalled only sees this request.
		mockAppointmentService.Calls = nil
		bodyBytes := []byte(`{"status":"postponed"}`)
		pathParams := map[string]string{"id": appointmentID.String()}
		req := testutils.CreateTestAdminRequest(http.MethodPatch, "/appointments/"+appointmentID.String()+"/status", bytes.NewReader(bodyBytes), adminID, pathParams)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		appointmentHandler.UpdateAppointmentStatus().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAppointmentService.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCancelAppointment(t *testing.T) {
	mockAppointmentService := new(mocks.AppointmentService)
	appointmentHandler := handlers.NewAppointmentHandler(mockAppointmentService)
	appointmentID := uuid.New()

	t.Run("Success - Appointment Cancelled", func(t *testing.T) {
		// Arrange
		expectedAppointment := &models.Appointment{ID: appointmentID, Status: models.AppointmentStatusCancelled}

		mockAppointmentService.On("CancelAppointment", mock.Anything, appointmentID).Return(expectedAppointment, nil).Once()

		pathParams := map[string]string{"id": appointmentID.String()}
		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/appointments/"+appointmentID.String(), nil, pathParams)
		rr := httptest.NewRecorder()

		// Act
		appointmentHandler.CancelAppointment().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var respAppointment models.Appointment
		err = json.Unmarshal(dataBytes, &respAppointment)
		assert.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusCancelled, respAppointment.Status)

		mockAppointmentService.AssertExpectations(t)
	})
}
