package middleware

import (
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/movies/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	metrics.HTTPRequestDuration.DeleteLabelValues(fiber.MethodGet, "/movies/:id", "204")
	before := testutil.CollectAndCount(metrics.HTTPRequestDuration)

	for _, path := range []string{"/movies/1", "/movies/2"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	// Both requests share one series.
	assert.Equal(t, before+1, testutil.CollectAndCount(metrics.HTTPRequestDuration))
}
