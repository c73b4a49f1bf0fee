package handlers

import (
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/api/middleware"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	service "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateUserRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create user input")
			return
		}

		user, err := h.userService.CreateUser(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create user", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("User created", slog.String("userId", user.ID.String()))
		response.Success(w, http.StatusCreated, user)
	}
}

func (h *UserHandler) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid user id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		user, err := h.userService.GetUserByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get user", slog.String("userId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

func (h *UserHandler) GetUserByEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		email := r.PathValue("email")
		if _, err := mail.ParseAddress(email); err != nil {
			logger.Warn("Invalid email path parameter")
			response.Error(w, errors.BadRequestError("Invalid email"))

			return
		}

		user, err := h.userService.GetUserByEmail(r.Context(), email)
		if err != nil {
			logger.Error("Failed to get user by email", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

func (h *UserHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query()

		filter := &models.UserFilter{
			Role:   query.Get("role"),
			Search: query.Get("search"),
		}

		users, err := h.userService.ListUsers(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list users", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, users)
	}
}

func (h *UserHandler) UpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid user id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.UpdateUserRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update user input")
			return
		}

		user, err := h.userService.UpdateUser(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update user", slog.String("userId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("User updated", slog.String("userId", id.String()))
		response.Success(w, http.StatusOK, user)
	}
}

func (h *UserHandler) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid user id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if err := h.userService.DeleteUser(r.Context(), id); err != nil {
			logger.Error("Failed to delete user", slog.String("userId", id.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("User deleted", slog.String("userId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "User deleted"})
	}
}
