package route

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoiShukrun1/Social-Media-Posts-Manager/config"
	"github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/testutils"
)

func TestHealthRoute(t *testing.T) {
	config.Conf = &config.AppConfig{Server: config.ServerConfig{Mode: "test"}}
	db := testutils.SetupTestDB(t)

	r := SetupRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}
