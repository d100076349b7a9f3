package errors

import (
	"net/http"
	"testing"

	"rescue/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrInsufficientStock.WrapMessage("offer 42")

	assert.True(t, errors.Is(err, ErrInsufficientStock))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("radius: must be positive")

	assert.Equal(t, "radius: must be positive", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrOfferNotAvailable))
	assert.True(t, IsClientError(ErrInvalidQuantity.WrapMessage("reserve")))
	assert.False(t, IsClientError(ErrReservationUnavailable))
	assert.False(t, IsClientError(NewDatabaseExecuteError(errors.New("conn reset"), "decrement")))
	assert.False(t, IsClientError(errors.New("plain")))
}

func TestBaseError_WithDetailsMatchesPredefined(t *testing.T) {
	err := errors.Wrap(ErrOfferNotAvailable.WithDetails("window closed"), "reserve")

	assert.True(t, errors.Is(err, ErrOfferNotAvailable))
	assert.False(t, errors.Is(err, ErrInsufficientStock))
}
