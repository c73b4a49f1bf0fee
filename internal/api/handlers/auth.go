package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/api/middleware"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	service "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator.New()}
}

func (h *AuthHandler) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.SignupRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid signup input")
			return
		}

		user, err := h.authService.Signup(r.Context(), &req)
		if err != nil {
			logger.Error("Signup failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("User signed up", slog.String("userId", user.ID.String()))
		response.Success(w, http.StatusCreated, user)
	}
}

// Login rate-limits attempts per email. A rejected credential or an exhausted
// window still answers 200 with success=false, mirroring the login form.
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		result, err := h.authService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		if !result.Success {
			logger.Warn("Login rejected", slog.Int("retryAfter", result.RetryAfter))
		} else {
			logger.Info("Login succeeded")
		}

		response.Success(w, http.StatusOK, result)
	}
}

func (h *AuthHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Missing user claims on authenticated route")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		user, err := h.authService.Me(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to load profile", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// Logout revokes the presented token until its natural expiry.
func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Missing user claims on authenticated route")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		if err := h.authService.Logout(r.Context(), claims); err != nil {
			logger.Error("Logout failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("User logged out", slog.String("userId", claims.UserID.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "Logged out"})
	}
}
