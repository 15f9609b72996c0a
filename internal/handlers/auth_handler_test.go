package handlers

import (
	"testing"

	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthApp(t *testing.T) (*fiber.App, *mockAuthService) {
	t.Helper()
	app, _ := newTestApp(t)
	svc := &mockAuthService{}
	h := NewAuthHandler(svc, newTestLogger())

	auth := app.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/reset-password/:username", h.GetSecurityQuestion)
	auth.Post("/reset-password/:username", h.ResetPassword)
	return app, svc
}

func TestAuthHandler_Register(t *testing.T) {
	input := services.RegisterInput{
		Username:         "username",
		Password:         "Tr1cky-Otter",
		SecurityQuestion: &services.SecurityQuestionInput{Question: "salam", Answer: "bye"},
	}

	t.Run("created", func(t *testing.T) {
		app, svc := setupAuthApp(t)
		svc.On("Register", mock.Anything, &input).Return(&models.User{ID: 1, Username: "username"}, nil).Once()

		status, resp := doRequest(t, app, fiber.MethodPost, "/auth/register", input, "")
		require.Equal(t, fiber.StatusCreated, status)

		var body RegisterResponse
		decodeData(t, resp, &body)
		assert.Equal(t, RegisterResponse{ID: 1, Username: "username"}, body)
	})

	t.Run("duplicate username", func(t *testing.T) {
		app, svc := setupAuthApp(t)
		svc.On("Register", mock.Anything, &input).Return(nil, &services.ValidationError{
			Fields: validation.FieldErrors{"username": {"A user with that username already exists."}},
		}).Once()

		status, resp := doRequest(t, app, fiber.MethodPost, "/auth/register", input, "")
		require.Equal(t, fiber.StatusBadRequest, status)

		var fields map[string][]string
		decodeData(t, resp, &fields)
		assert.Equal(t, []string{"A user with that username already exists."}, fields["username"])
	})

	t.Run("malformed body", func(t *testing.T) {
		app, svc := setupAuthApp(t)

		status, _ := doRequest(t, app, fiber.MethodPost, "/auth/register", "not an object", "")
		assert.Equal(t, fiber.StatusBadRequest, status)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		app, svc := setupAuthApp(t)
		svc.On("Login", mock.Anything, &services.LoginInput{Username: "alice", Password: "secret"}).Return("signed.jwt.token", nil).Once()

		status, resp := doRequest(t, app, fiber.MethodPost, "/auth/login", services.LoginInput{Username: "alice", Password: "secret"}, "")
		require.Equal(t, fiber.StatusOK, status)

		var body TokenResponse
		decodeData(t, resp, &body)
		assert.Equal(t, "signed.jwt.token", body.Token)
	})

	t.Run("bad credentials", func(t *testing.T) {
		app, svc := setupAuthApp(t)
		svc.On("Login", mock.Anything, mock.Anything).Return("", &services.ValidationError{
			Fields: validation.FieldErrors{validation.NonFieldErrors: {"Unable to log in with provided credentials."}},
		}).Once()

		status, resp := doRequest(t, app, fiber.MethodPost, "/auth/login", services.LoginInput{Username: "alice", Password: "wrong"}, "")
		require.Equal(t, fiber.StatusBadRequest, status)

		var fields map[string][]string
		decodeData(t, resp, &fields)
		assert.Equal(t, []string{"Unable to log in with provided credentials."}, fields["non_field_errors"])
	})
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	t.Run("question", func(t *testing.T) {
		app, svc := setupAuthApp(t)
		svc.On("GetSecurityQuestion", mock.Anything, "username").
			Return(&models.SecurityQuestion{Question: "salam", Answer: "bye"}, nil).Once()

		status, resp := doRequest(t, app, fiber.MethodGet, "/auth/reset-password/username", nil, "")
		require.Equal(t, fiber.StatusOK, status)

		var body map[string]interface{}
		decodeData(t, resp, &body)
		assert.Equal(t, map[string]interface{}{"question": "salam"}, body)
	})

	t.Run("question for unknown user", func(t *testing.T) {
		app, svc := setupAuthApp(t)
		svc.On("GetSecurityQuestion", mock.Anything, "something").Return(nil, services.ErrNotFound).Once()

		status, _ := doRequest(t, app, fiber.MethodGet, "/auth/reset-password/something", nil, "")
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("question for percent-encoded username", func(t *testing.T) {
		app, svc := setupAuthApp(t)
		svc.On("GetSecurityQuestion", mock.Anything, "alice@example.com").
			Return(&models.SecurityQuestion{Question: "salam"}, nil).Once()

		status, _ := doRequest(t, app, fiber.MethodGet, "/auth/reset-password/alice%40example.com", nil, "")
		assert.Equal(t, fiber.StatusOK, status)
		svc.AssertExpectations(t)
	})

	t.Run("reset for percent-encoded username", func(t *testing.T) {
		app, svc := setupAuthApp(t)
		svc.On("ResetPassword", mock.Anything, "bob+films@example.com", mock.Anything).Return(nil).Once()

		status, _ := doRequest(t, app, fiber.MethodPost, "/auth/reset-password/bob%2Bfilms%40example.com",
			services.ResetPasswordInput{Answer: "bye", Password: "n3w-Otter-pass"}, "")
		assert.Equal(t, fiber.StatusOK, status)
		svc.AssertExpectations(t)
	})

	t.Run("reset", func(t *testing.T) {
		app, svc := setupAuthApp(t)
		input := services.ResetPasswordInput{Answer: "bye", Password: "n3w-Otter-pass"}
		svc.On("ResetPassword", mock.Anything, "username", &input).Return(nil).Once()

		status, _ := doRequest(t, app, fiber.MethodPost, "/auth/reset-password/username", input, "")
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("wrong answer", func(t *testing.T) {
		app, svc := setupAuthApp(t)
		svc.On("ResetPassword", mock.Anything, "username", mock.Anything).Return(&services.ValidationError{
			Fields: validation.FieldErrors{"answer": {"The given answer does not match the answer provided at registration."}},
		}).Once()

		status, resp := doRequest(t, app, fiber.MethodPost, "/auth/reset-password/username",
			services.ResetPasswordInput{Answer: "Bye", Password: "n3w-Otter-pass"}, "")
		require.Equal(t, fiber.StatusBadRequest, status)

		var fields map[string][]string
		decodeData(t, resp, &fields)
		assert.Contains(t, fields, "answer")
	})

	t.Run("no security question", func(t *testing.T) {
		app, svc := setupAuthApp(t)
		svc.On("ResetPassword", mock.Anything, "staff", mock.Anything).Return(services.ErrNotFound).Once()

		status, resp := doRequest(t, app, fiber.MethodPost, "/auth/reset-password/staff",
			services.ResetPasswordInput{Answer: "x", Password: "y"}, "")
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "Security question not found", resp.Message)
	})
}
