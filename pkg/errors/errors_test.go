package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name   string
		err    *AppError
		status int
	}{
		{"not found", NotFound("patient", nil), http.StatusNotFound},
		{"bad request", BadRequest("invalid payload", cause), http.StatusBadRequest},
		{"unavailable", Unavailable("database unreachable", cause), http.StatusServiceUnavailable},
		{"internal", Internal(cause), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "patient not found", NotFound("patient", nil).Error())

	wrapped := Unavailable("database unreachable", errors.New("dial tcp: refused"))
	assert.Equal(t, "database unreachable: dial tcp: refused", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	assert.True(t, errors.Is(Internal(cause), cause))
	assert.Nil(t, errors.Unwrap(NotFound("patient", nil)))
}
