package chi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chirouter "clip-share/internal/adapters/handlers/http/chi"
	"clip-share/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpointNeedsNoAPIKey(t *testing.T) {
	// Arrange
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authCfg := config.AuthConfig{APIKey: "secret", HeaderName: "API-Key"}
	router := chirouter.NewRouter(logger, authCfg, nil, nil, "test")
	server := httptest.NewServer(router)
	defer server.Close()

	// Act
	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got chirouter.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "ok", got.Status)
}

func TestAPIRoutesRejectWithoutKey(t *testing.T) {
	// Arrange
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authCfg := config.AuthConfig{APIKey: "secret", HeaderName: "API-Key"}
	router := chirouter.NewRouter(logger, authCfg, nil, nil, "test")
	server := httptest.NewServer(router)
	defer server.Close()

	// Act
	resp, err := http.Post(server.URL+"/api/v1/generate_link", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
