package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guideflow/internal/delivery/http/middleware"
	"guideflow/internal/delivery/http/validator"
	mockUC "guideflow/internal/mocks/usecase"
	"guideflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := &mockUC.MockUserUsecase{}
	handler := NewAuthHandler(uc)

	userID := uuid.New()
	uc.On("Register", mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.AuthOutput{
			Token: "session-token",
			User:  &usecase.UserProfile{ID: userID, Name: "Test User", Email: "test@example.com"},
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"test@example.com","password":"password123"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "session-token")
	assert.Contains(t, rec.Body.String(), "test@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	uc := &mockUC.MockUserUsecase{}
	handler := NewAuthHandler(uc)

	c, _ := newTestContext(http.MethodPost, "/auth/register", `{"email":"test@example.com"}`)

	err := handler.Register(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	uc := &mockUC.MockUserUsecase{}
	handler := NewAuthHandler(uc)

	c, _ := newTestContext(http.MethodPost, "/auth/register",
		`{"name":"Test User","email":"test@example.com","password":"abc"}`)

	err := handler.Register(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := &mockUC.MockUserUsecase{}
	handler := NewAuthHandler(uc)

	uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.AuthOutput{Token: "session-token"}, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/login",
		`{"email":"test@example.com","password":"password123"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "session-token")
}

func TestAuthHandler_Me_Success(t *testing.T) {
	uc := &mockUC.MockUserUsecase{}
	handler := NewAuthHandler(uc)

	userID := uuid.New()
	uc.On("GetMe", mock.Anything, userID).
		Return(&usecase.UserProfile{ID: userID, Name: "Test User", Email: "test@example.com"}, nil)

	c, rec := newTestContext(http.MethodGet, "/auth/me", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Test User")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
