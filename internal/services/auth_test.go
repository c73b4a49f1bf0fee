package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/config"
	appErrors "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/errors"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/models"
	repository "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories"
	"github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/repositories/mocks"
	service "github.com/Ellio-Dredd/Rajapakse-Pharmacy/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthServiceTest(t *testing.T) (service.AuthService, *mocks.UserRepository, *mocks.RateLimitRepository, *mocks.TokenRepository) {
	mockUserRepo := mocks.NewUserRepository(t)
	mockRateLimit := mocks.NewRateLimitRepository(t)
	mockTokens := mocks.NewTokenRepository(t)

	authService := service.NewAuthService(mockUserRepo, mockRateLimit, mockTokens, &config.Security{
		JWTKey:   "test-signing-key",
		TokenTTL: time.Hour,
	})

	return authService, mockUserRepo, mockRateLimit, mockTokens
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hashed)
}

func TestSignup_Success(t *testing.T) {
	// Arrange
	authService, mockUserRepo, _, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	mockUserRepo.On("GetUserByEmail", ctx, "asha@example.com").Return(nil, errors.New("sql: no rows in result set")).Once()
	mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "asha@example.com" && u.Role == "customer" && u.PasswordHash != "" && u.PasswordHash != "secret123"
	})).Return(nil).Once()

	// Act
	user, err := authService.Signup(ctx, &models.SignupRequest{
		Email:    "asha@example.com",
		Password: "secret123",
		Name:     "Asha Jayawardena",
	})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "customer", user.Role)
}

func TestSignup_EmailAlreadyRegistered(t *testing.T) {
	// Arrange
	authService, mockUserRepo, _, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	existing := &models.User{ID: uuid.New(), Email: "asha@example.com"}
	mockUserRepo.On("GetUserByEmail", ctx, "asha@example.com").Return(existing, nil).Once()

	// Act
	user, err := authService.Signup(ctx, &models.SignupRequest{
		Email:    "asha@example.com",
		Password: "secret123",
		Name:     "Asha Jayawardena",
	})

	// Assert
	assert.Nil(t, user)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeDuplicateEntry, appErr.Code)

	mockUserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

// The pre-check can miss a concurrent signup; the unique index on email is the
// real guard and its violation maps to the same duplicate error.
func TestSignup_ConcurrentInsertRace(t *testing.T) {
	// Arrange
	authService, mockUserRepo, _, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	mockUserRepo.On("GetUserByEmail", ctx, "asha@example.com").Return(nil, errors.New("sql: no rows in result set")).Once()

	pqErr := &pq.Error{Code: "23505", Constraint: repository.EmailConstraint}
	mockUserRepo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(pqErr).Once()

	// Act
	user, err := authService.Signup(ctx, &models.SignupRequest{
		Email:    "asha@example.com",
		Password: "secret123",
		Name:     "Asha Jayawardena",
	})

	// Assert
	assert.Nil(t, user)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeDuplicateEntry, appErr.Code)
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	authService, mockUserRepo, mockRateLimit, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		Role:         "customer",
		PasswordHash: hashPassword(t, "secret123"),
	}

	mockRateLimit.On("CheckLoginRateLimit", ctx, "asha@example.com").Return(true, 4, 0, nil).Once()
	mockUserRepo.On("GetUserByEmail", ctx, "asha@example.com").Return(user, nil).Once()

	// Act
	resp, err := authService.Login(ctx, &models.LoginRequest{Email: "asha@example.com", Password: "secret123"})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Positive(t, resp.ExpiresIn)

	// The token must parse and carry the user's identity.
	claims := &models.Claims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-signing-key"), nil
	})
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "customer", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Arrange
	authService, mockUserRepo, mockRateLimit, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		PasswordHash: hashPassword(t, "secret123"),
	}

	mockRateLimit.On("CheckLoginRateLimit", ctx, "asha@example.com").Return(true, 2, 0, nil).Once()
	mockUserRepo.On("GetUserByEmail", ctx, "asha@example.com").Return(user, nil).Once()

	// Act
	resp, err := authService.Login(ctx, &models.LoginRequest{Email: "asha@example.com", Password: "wrong"})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Token)
	assert.Equal(t, 2, resp.RemainingTries)
}

// Unknown accounts answer exactly like a wrong password, so a caller cannot
// probe which emails are registered.
func TestLogin_UnknownEmail(t *testing.T) {
	// Arrange
	authService, mockUserRepo, mockRateLimit, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	mockRateLimit.On("CheckLoginRateLimit", ctx, "nobody@example.com").Return(true, 4, 0, nil).Once()
	mockUserRepo.On("GetUserByEmail", ctx, "nobody@example.com").Return(nil, errors.New("sql: no rows in result set")).Once()

	// Act
	resp, err := authService.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid email or password", resp.Message)
}

func TestLogin_RateLimited(t *testing.T) {
	// Arrange
	authService, mockUserRepo, mockRateLimit, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	mockRateLimit.On("CheckLoginRateLimit", ctx, "asha@example.com").Return(false, 0, 300, nil).Once()

	// Act
	resp, err := authService.Login(ctx, &models.LoginRequest{Email: "asha@example.com", Password: "secret123"})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Equal(t, 300, resp.RetryAfter)

	mockUserRepo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
}

func TestLogin_RateLimitBackendDown(t *testing.T) {
	// Arrange
	authService, _, mockRateLimit, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	mockRateLimit.On("CheckLoginRateLimit", ctx, "asha@example.com").Return(false, 0, 0, errors.New("redis: connection refused")).Once()

	// Act
	resp, err := authService.Login(ctx, &models.LoginRequest{Email: "asha@example.com", Password: "secret123"})

	// Assert
	assert.Nil(t, resp)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	// Arrange
	authService, _, _, mockTokens := setupAuthServiceTest(t)
	ctx := context.Background()

	claims := &models.Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}

	mockTokens.On("RevokeToken", ctx, claims.ID, mock.AnythingOfType("time.Duration")).Return(nil).Once()

	// Act
	err := authService.Logout(ctx, claims)

	// Assert
	assert.NoError(t, err)
}

func TestLogout_TokenWithoutID(t *testing.T) {
	// Arrange
	authService, _, _, mockTokens := setupAuthServiceTest(t)
	ctx := context.Background()

	// Act
	err := authService.Logout(ctx, &models.Claims{UserID: uuid.New()})

	// Assert
	assert.NoError(t, err)
	mockTokens.AssertNotCalled(t, "RevokeToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestMe_NotFound(t *testing.T) {
	// Arrange
	authService, mockUserRepo, _, _ := setupAuthServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.On("GetUserByID", ctx, userID).Return(nil, errors.New("sql: no rows in result set")).Once()

	// Act
	user, err := authService.Me(ctx, userID)

	// Assert
	assert.Nil(t, user)
	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
}
