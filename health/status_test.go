package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	h := Healthy("schema-registry", "schema loaded")
	assert.True(t, h.Healthy)
	assert.Equal(t, StatusHealthy, h.Status)
	assert.Equal(t, "schema-registry", h.Component)

	u := Unhealthy("schema-registry", "schema failed validation")
	assert.False(t, u.Healthy)
	assert.Equal(t, StatusUnhealthy, u.Status)
}

func TestHandlerHealthy(t *testing.T) {
	handler := Handler(func() Status { return Healthy("schema-registry", "ok") })

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var status Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Healthy)
	assert.False(t, status.Timestamp.IsZero())
}

func TestHandlerUnhealthy(t *testing.T) {
	handler := Handler(func() Status { return Unhealthy("schema-registry", "no schema") })

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
