package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validoc/pkg/validator"
)

func TestSeverity(t *testing.T) {
	t.Run("string forms", func(t *testing.T) {
		assert.Equal(t, "Error", validator.SeverityError.String())
		assert.Equal(t, "Warning", validator.SeverityWarning.String())
		assert.Equal(t, "Info", validator.SeverityInfo.String())
	})

	t.Run("unset renders empty", func(t *testing.T) {
		var s validator.Severity
		assert.Equal(t, "", s.String())
		text, err := s.MarshalText()
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, s := range []validator.Severity{0, validator.SeverityError, validator.SeverityWarning, validator.SeverityInfo} {
			text, err := s.MarshalText()
			require.NoError(t, err)
			var back validator.Severity
			require.NoError(t, back.UnmarshalText(text))
			assert.Equal(t, s, back)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		var s validator.Severity
		assert.ErrorIs(t, s.UnmarshalText([]byte("Fatal")), validator.ErrInvalidEnumValue)
	})
}

func TestCascadeMode(t *testing.T) {
	assert.Equal(t, "Continue", validator.Continue.String())
	assert.Equal(t, "StopOnFirstFailure", validator.StopOnFirstFailure.String())

	var m validator.CascadeMode
	assert.Equal(t, validator.Continue, m)
	require.NoError(t, m.UnmarshalText([]byte("StopOnFirstFailure")))
	assert.Equal(t, validator.StopOnFirstFailure, m)
	assert.ErrorIs(t, m.UnmarshalText([]byte("Abort")), validator.ErrInvalidEnumValue)
}
