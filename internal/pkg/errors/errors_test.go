package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WrapKeepsIdentity(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := ErrStoreUnavailable.Wrap(cause)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrDatabaseError)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Nil(t, ErrStoreUnavailable.Unwrap())
}

func TestAppError_WithDetailsCopies(t *testing.T) {
	err := ErrInvalidID.WithDetails(map[string]interface{}{"id": -1})

	assert.Equal(t, -1, err.Details["id"])
	assert.Empty(t, ErrInvalidID.Details)
	assert.ErrorIs(t, fmt.Errorf("handler: %w", err), ErrInvalidID)
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: Resource not found", ErrNotFound.Error())
}
