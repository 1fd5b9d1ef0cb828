package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	err := ErrInvalidRequest.WithDetails(map[string]interface{}{"field": "count"})

	assert.Equal(t, "count", err.Details["field"])
	assert.Nil(t, ErrInvalidRequest.Details)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestAppError_Is(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrInvalidContinent.WithDetails(map[string]interface{}{"continent": "Atlantis"}))

	assert.True(t, stderrors.Is(wrapped, ErrInvalidContinent))
	assert.False(t, stderrors.Is(wrapped, ErrInvalidRequest))
	assert.Equal(t, "INVALID_CONTINENT: Unknown continent", ErrInvalidContinent.Error())
}

func TestAppError_WrapKeepsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := ErrDatabaseError.Wrap(cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, stderrors.Is(err, ErrDatabaseError))
	assert.Nil(t, ErrDatabaseError.Unwrap())
}
