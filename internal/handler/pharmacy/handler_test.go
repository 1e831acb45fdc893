package pharmacy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisuite/hospital-services/internal/model"
)

type stubSource struct {
	medicines []*model.RemoteMedicine
}

func (s *stubSource) FetchMedicines(context.Context) []*model.RemoteMedicine {
	if s.medicines == nil {
		return []*model.RemoteMedicine{}
	}
	return s.medicines
}

func serve(t *testing.T, source MedicineSource) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(source).RegisterRoutes(engine.Group("/"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pharmacy/medicines", nil))
	return w
}

func TestListMedicines(t *testing.T) {
	w := serve(t, &stubSource{medicines: []*model.RemoteMedicine{
		{ID: "1", Name: "Paracetamol", Status: "Pending"},
	}})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Paracetamol", resp.Data[0].Name)
}

func TestListMedicinesEmpty(t *testing.T) {
	w := serve(t, &stubSource{})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
