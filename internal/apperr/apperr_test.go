package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("Booking not found")))
	assert.Equal(t, http.StatusConflict, StatusOf(Conflict("Slot is already booked for this period")))

	// A wrapped Error still resolves through the chain
	wrapped := fmt.Errorf("create booking: %w", Forbidden("Slot not in your community"))
	assert.Equal(t, http.StatusForbidden, StatusOf(wrapped))
	assert.Equal(t, "Slot not in your community", MessageOf(wrapped))

	// Anything unrecognized is an internal error
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("connection reset")))
	assert.Equal(t, "Internal server error", MessageOf(errors.New("connection reset")))
}

func TestInternalKeepsDetailOutOfMessage(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	err := Internal(cause)

	assert.Equal(t, "Internal server error", MessageOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
