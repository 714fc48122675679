package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, oe *OTelExporter) string {
	t.Helper()
	w := httptest.NewRecorder()
	oe.ServeHTTP().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestOTelExporter(t *testing.T) {
	ctx := context.Background()

	t.Run("exposes pipeline metrics", func(t *testing.T) {
		oe, err := NewOTelExporter(promclient.NewRegistry())
		require.NoError(t, err)
		defer oe.Shutdown(ctx)

		oe.Observe(ctx, Outcome{EntityType: "Entry", Result: ResultDelivered, Duration: 120 * time.Millisecond})
		oe.Observe(ctx, Outcome{EntityType: "Entry", Result: ResultFailed, ErrorKind: "lookup_miss", Duration: time.Millisecond})
		oe.Observe(ctx, Outcome{EntityType: "Asset", Result: ResultSkipped})

		body := scrape(t, oe)
		assert.Contains(t, body, "notification_pipeline_runs")
		assert.Contains(t, body, "notification_pipeline_duration")
		assert.Contains(t, body, "notification_last_delivery_timestamp")
		assert.Contains(t, body, `error_kind="lookup_miss"`)
		assert.Contains(t, body, "go_goroutines")
	})

	t.Run("last delivery is only reported after a delivery", func(t *testing.T) {
		oe, err := NewOTelExporter(promclient.NewRegistry())
		require.NoError(t, err)
		defer oe.Shutdown(ctx)

		oe.Observe(ctx, Outcome{EntityType: "Asset", Result: ResultSkipped})

		assert.NotContains(t, scrape(t, oe), "notification_last_delivery_timestamp")
	})

	t.Run("registry can only be used once", func(t *testing.T) {
		reg := promclient.NewRegistry()
		oe, err := NewOTelExporter(reg)
		require.NoError(t, err)
		defer oe.Shutdown(ctx)

		_, err = NewOTelExporter(reg)
		require.Error(t, err)
	})
}

func TestNoop(t *testing.T) {
	var r Recorder = Noop{}
	assert.NotPanics(t, func() {
		r.Observe(context.Background(), Outcome{Result: ResultDelivered})
	})
}
