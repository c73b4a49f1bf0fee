package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	mockAuthService := new(mocks.AuthService)
	authHandler := handlers.NewAuthHandler(mockAuthService)

	signupReq := models.SignupRequest{
		Email:    "asha@example.com",
		Password: "secret123",
		Name:     "Asha Jayawardena",
	}

	t.Run("Success - Account Created", func(t *testing.T) {
		// Arrange
		expectedUser := &models.User{ID: uuid.New(), Email: signupReq.Email, Name: signupReq.Name, Role: "customer"}

		mockAuthService.On("Signup", mock.Anything, mock.AnythingOfType("*models.SignupRequest")).Return(expectedUser, nil).Once()

		bodyBytes, _ := json.Marshal(signupReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/signup", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		authHandler.Signup().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		mockAuthService.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		// Arrange
		mockAuthService.On("Signup", mock.Anything, mock.AnythingOfType("*models.SignupRequest")).
			Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		bodyBytes, _ := json.Marshal(signupReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/signup", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		authHandler.Signup().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, resp.Error.Code)

		mockAuthService.AssertExpectations(t)
	})

	t.Run("Failure - Password Too Short", func(t *testing.T) {
		// Arrange
		// Drop calls recorded by earlier subtests so AssertNotCalled only sees this request.
		mockAuthService.Calls = nil
		bodyBytes, _ := json.Marshal(models.SignupRequest{Email: "asha@example.com", Password: "abc", Name: "Asha"})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/signup", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		authHandler.Signup().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAuthService.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	mockAuthService := new(mocks.AuthService)
	authHandler := handlers.NewAuthHandler(mockAuthService)

	loginReq := models.LoginRequest{Email: "asha@example.com", Password: "secret123"}

	t.Run("Success - Token Issued", func(t *testing.T) {
		// Arrange
		mockAuthService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Success: true, Token: "header.payload.sig", ExpiresIn: 3600}, nil).Once()

		bodyBytes, _ := json.Marshal(loginReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/login", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		authHandler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var loginResp models.LoginResponse
		err = json.Unmarshal(dataBytes, &loginResp)
		assert.NoError(t, err)
		assert.True(t, loginResp.Success)
		assert.NotEmpty(t, loginResp.Token)

		mockAuthService.AssertExpectations(t)
	})

	// Rejected credentials and throttled logins are domain answers, not
	// transport errors: the HTTP status stays 200 and the payload says no.
	t.Run("Success - Rate Limited Login Answers 200", func(t *testing.T) {
		// Arrange
		mockAuthService.On("Login", mock.Anything, mock.AnythingOfType("*models.LoginRequest")).
			Return(&models.LoginResponse{Success: false, Message: "Too many login attempts. Please try again later.", RetryAfter: 300}, nil).Once()

		bodyBytes, _ := json.Marshal(loginReq)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/auth/login", bytes.NewReader(bodyBytes), nil)
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		authHandler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)

		dataBytes, err := json.Marshal(resp.Data)
		assert.NoError(t, err)

		var loginResp models.LoginResponse
		err = json.Unmarshal(dataBytes, &loginResp)
		assert.NoError(t, err)
		assert.False(t, loginResp.Success)
		assert.Equal(t, 300, loginResp.RetryAfter)

		mockAuthService.AssertExpectations(t)
	})
}

func TestMe(t *testing.T) {
	mockAuthService := new(mocks.AuthService)
	authHandler := handlers.NewAuthHandler(mockAuthService)
	userID := uuid.New()

	t.Run("Success - Profile Returned", func(t *testing.T) {
		// Arrange
		expectedUser := &models.User{ID: userID, Email: "test@example.com", Role: "customer"}

		mockAuthService.On("Me", mock.Anything, userID).Return(expectedUser, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/auth/me", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		authHandler.Me().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthService.AssertExpectations(t)
	})

	t.Run("Failure - No Claims In Context", func(t *testing.T) {
		// Arrange
		// Drop calls recorded by earlier subtests so AssertNotCalled only sees this request.
		mockAuthService.Calls = nil
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/auth/me", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		authHandler.Me().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, resp.Error.Code)

		mockAuthService.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
	})
}

func TestLogout(t *testing.T) {
	mockAuthService := new(mocks.AuthService)
	authHandler := handlers.NewAuthHandler(mockAuthService)
	userID := uuid.New()

	t.Run("Success - Token Revoked", func(t *testing.T) {
		// Arrange
		mockAuthService.On("Logout", mock.Anything, mock.AnythingOfType("*models.Claims")).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/auth/logout", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		authHandler.Logout().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthService.AssertExpectations(t)
	})
}
