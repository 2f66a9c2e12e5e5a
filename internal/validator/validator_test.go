package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
	TierKind string `json:"tier_kind" validate:"omitempty,is-tier-kind"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Email: "a@b.com", Quantity: 1, TierKind: "country"})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Email: "not-an-email", Quantity: 0})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "quantity")
}

func TestValidate_TierKindRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.com", Quantity: 1, TierKind: "region"}))

	err := v.Validate(&sampleRequest{Email: "a@b.com", Quantity: 1, TierKind: "continent"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "tier_kind")
}
