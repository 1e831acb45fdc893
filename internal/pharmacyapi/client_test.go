package pharmacyapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMedicines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"medicines": [
			{"id": "1", "name": "Paracetamol", "dosage": "500mg", "status": "Pending"},
			{"id": "2", "name": "Ibuprofen", "dosage": null, "status": "Dispensed"}
		]}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	medicines := c.FetchMedicines(context.Background())

	require.Len(t, medicines, 2)
	assert.Equal(t, "Paracetamol", medicines[0].Name)
	require.NotNil(t, medicines[0].Dosage)
	assert.Equal(t, "500mg", *medicines[0].Dosage)
	assert.Nil(t, medicines[1].Dosage)
}

func TestFetchMedicinesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"medicines": []}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	assert.Empty(t, c.FetchMedicines(context.Background()))
}

func TestFetchMedicinesFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"remote errors", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"errors": [{"message": "boom"}]}`)
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"null data", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data": {"medicines": null}}`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(srv.URL, nil)
			medicines := c.FetchMedicines(context.Background())
			assert.NotNil(t, medicines)
			assert.Empty(t, medicines)
		})
	}
}

func TestFetchMedicinesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, nil)
	medicines := c.FetchMedicines(context.Background())
	assert.NotNil(t, medicines)
	assert.Empty(t, medicines)
}
