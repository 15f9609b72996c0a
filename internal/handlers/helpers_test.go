package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/models"
	"movie-catalog/internal/services"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testResponse struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestTokens(t *testing.T) *services.TokenManager {
	t.Helper()
	tokens, err := services.NewTokenManager(config.AuthConfig{
		JWTSecret: "handler-test-secret-with-enough-bytes",
		TokenTTL:  time.Hour,
		Issuer:    "movie-catalog-test",
	})
	require.NoError(t, err)
	return tokens
}

// newTestApp returns an app that authenticates with tokens, plus a helper
// to mint bearer headers for it.
func newTestApp(t *testing.T) (*fiber.App, func(id uint, username string) string) {
	t.Helper()
	tokens := newTestTokens(t)

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(middleware.Authenticate(tokens, newTestLogger()))

	bearer := func(id uint, username string) string {
		token, err := tokens.Issue(&models.User{ID: id, Username: username})
		require.NoError(t, err)
		return "Bearer " + token
	}
	return app, bearer
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, authorization string) (int, testResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out testResponse
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func decodeData(t *testing.T, resp testResponse, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, v))
}
