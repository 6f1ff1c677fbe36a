package cmd_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, string, []byte) error { return nil }

func testConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:                   cmd.DefaultHTTPPort,
		KafkaOrderStatusTopic:      cmd.DefaultKafkaOrderStatusTopic,
		NotificationRelaySchedule:  cmd.DefaultNotificationRelaySchedule,
		NotificationRelayBatchSize: cmd.DefaultNotificationRelayBatchSize,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompositionRoot_CreateRouter(t *testing.T) {
	app := cmd.NewCompositionRoot(testConfig(), nil, nil, discardLogger())

	e, err := app.CreateRouter()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `marketplace_http_requests_total{method="GET",route="/health",status="200"} 1`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	t.Run("relay disabled without publisher", func(t *testing.T) {
		app := cmd.NewCompositionRoot(testConfig(), nil, nil, discardLogger())

		manager, err := app.CreateJobManager()
		require.NoError(t, err)
		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("invalid relay settings", func(t *testing.T) {
		config := testConfig()
		config.NotificationRelayBatchSize = 0
		app := cmd.NewCompositionRoot(config, nil, nopPublisher{}, discardLogger())

		_, err := app.CreateJobManager()

		require.Error(t, err)
	})
}
