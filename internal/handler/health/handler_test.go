package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) PingContext(context.Context) error {
	return s.err
}

func check(t *testing.T, db Pinger) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(db).RegisterRoutes(engine.Group("/"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	return w
}

func TestCheckHealthy(t *testing.T) {
	w := check(t, &stubPinger{})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestCheckDatabaseDown(t *testing.T) {
	w := check(t, &stubPinger{err: errors.New("connection refused")})

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Error.Code)
	assert.Equal(t, "database unreachable", resp.Error.Message)
}
