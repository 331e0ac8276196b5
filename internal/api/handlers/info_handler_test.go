// filepath: internal/api/handlers/info_handler_test.go
package handlers

import (
	"encoding/json"
	"flowershop/internal/models"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	api, cleanup := setupHandlerTestAPI(t, nil)
	defer cleanup()

	resp, err := http.Get(api.server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var info models.Info
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "Flower Shop API", info.Message)
	assert.True(t, info.StoreConnected)
}

func TestHealthCheck(t *testing.T) {
	api, cleanup := setupHandlerTestAPI(t, nil)
	defer cleanup()

	resp, err := http.Get(api.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK\n", string(body))
}
