package fnames

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "anniversary-backend/pkg/errors"
	"anniversary-backend/pkg/observability"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMetrics() *observability.Metrics {
	return observability.NewMetrics(prometheus.NewRegistry())
}

func TestTransfers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfers", r.URL.Path)
		assert.Equal(t, "500", r.URL.Query().Get("fid"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transfers":[
			{"id":1,"timestamp":1700000000,"username":"later","owner":"0xabc"},
			{"id":2,"timestamp":1610668800,"username":"alice","owner":"0xabc"}
		]}`))
	}))
	defer srv.Close()

	metrics := newTestMetrics()
	client := NewClient(srv.URL, time.Second, metrics, zap.NewNop())

	events, err := client.Transfers(context.Background(), 500)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(1700000000), events[0].Timestamp)
	assert.Equal(t, "alice", events[1].Username)
	assert.Equal(t, 1.0,
		testutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues("fnames", "success")))
}

func TestTransfers_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transfers":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, newTestMetrics(), zap.NewNop())

	events, err := client.Transfers(context.Background(), 999)

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestTransfers_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	metrics := newTestMetrics()
	client := NewClient(srv.URL, time.Second, metrics, zap.NewNop())

	_, err := client.Transfers(context.Background(), 500)

	require.Error(t, err)
	assert.True(t, apperrors.IsUpstreamUnavailable(err))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues("fnames", "error")))
}

func TestTransfers_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	client := NewClient(srv.URL, time.Second, newTestMetrics(), zap.NewNop())

	_, err := client.Transfers(context.Background(), 500)

	require.Error(t, err)
	assert.True(t, apperrors.IsUpstreamUnavailable(err))
}
