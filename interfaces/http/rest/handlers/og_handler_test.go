package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOGHandler_Result(t *testing.T) {
	h := NewOGHandler(zap.NewNop())

	q := url.Values{}
	q.Set("fid", "500")
	q.Set("joinDate", "January 15, 2021")
	q.Set("anniversary", "3 years")
	q.Set("username", "alice")
	q.Set("awesomeText", "You're part of the first 1,000 on Farcaster!")

	req := httptest.NewRequest(http.MethodGet, "/api/og?"+q.Encode(), nil)
	rec := httptest.NewRecorder()

	h.Render(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "January 15, 2021")
	assert.Contains(t, body, "3 years")
	assert.Contains(t, body, "alice")
}

func TestOGHandler_Error(t *testing.T) {
	h := NewOGHandler(zap.NewNop())

	q := url.Values{}
	q.Set("isError", "true")
	q.Set("errorMessage", "No Farcaster account found for this FID")

	req := httptest.NewRequest(http.MethodGet, "/api/og?"+q.Encode(), nil)
	rec := httptest.NewRecorder()

	h.Render(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No Farcaster account found")
}

func TestOGHandler_Initial(t *testing.T) {
	h := NewOGHandler(zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/og?isInitial=true", nil)
	rec := httptest.NewRecorder()

	h.Render(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age")
	assert.Contains(t, rec.Body.String(), "<svg")
}
