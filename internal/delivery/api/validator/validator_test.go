package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reserveRequest struct {
	OfferID  string `json:"offer_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Mode     string `json:"mode" validate:"omitempty,oneof=nearby all"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&reserveRequest{OfferID: "8a1b6c9e-2f4d-4f0a-9d57-3c2b1e0f7a64", Quantity: 2}))

	err := v.Validate(&reserveRequest{Mode: "everywhere"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offer_id is required")
	assert.Contains(t, err.Error(), "quantity is required")
	assert.Contains(t, err.Error(), "mode must be one of [nearby all]")
}
