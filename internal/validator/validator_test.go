package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applyBody struct {
	JobID string `json:"jobId" validate:"required,uuid"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Struct(applyBody{})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Errors["jobId"])
	assert.Equal(t, "jobId is required", verr.Error())
}

func TestStructRejectsMalformedID(t *testing.T) {
	err := New().Struct(applyBody{JobID: "abc"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be a valid id", verr.Errors["jobId"])
}

func TestStructAcceptsValid(t *testing.T) {
	assert.NoError(t, New().Struct(applyBody{JobID: "4f7c1d2e-8b9a-4c3d-9e1f-2a3b4c5d6e7f"}))
}
