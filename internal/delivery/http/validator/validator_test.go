package validator

import (
	"net/http"
	"testing"

	domainerrors "journal/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createEntryForm struct {
	Text string `json:"text" validate:"required,min=10,max=5000"`
	Mood string `json:"mood" validate:"required,oneof=great good neutral bad awful"`
}

func TestRequestValidator_Valid(t *testing.T) {
	rv := New()

	err := rv.Validate(&createEntryForm{
		Text: "a perfectly reasonable journal entry",
		Mood: "good",
	})
	assert.NoError(t, err)
}

func TestRequestValidator_AggregatesAllFailures(t *testing.T) {
	rv := New()

	// Both constraints are violated; the aggregated error must carry both
	// field failures, not just the first.
	err := rv.Validate(&createEntryForm{
		Text: "",
		Mood: "ecstatic",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())

	fields, ok := appErr.Details().([]domainerrors.FieldError)
	require.True(t, ok)
	require.Len(t, fields, 2)
	assert.Equal(t, "text", fields[0].Field)
	assert.Equal(t, "mood", fields[1].Field)
	assert.Equal(t, "ecstatic", fields[1].RejectedValue)
}

func TestRequestValidator_RedactsCredentialValues(t *testing.T) {
	rv := New()

	form := struct {
		Password string `json:"password" validate:"required,min=8"`
	}{Password: "short"}

	err := rv.Validate(&form)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))

	fields, ok := appErr.Details().([]domainerrors.FieldError)
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Nil(t, fields[0].RejectedValue)
}
