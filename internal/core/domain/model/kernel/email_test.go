package kernel_test

import (
	"strings"
	"testing"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailAddress(t *testing.T) {
	t.Run("should create valid email", func(t *testing.T) {
		e, err := kernel.NewEmailAddress("ada@example.com")

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, "ada@example.com", e.Value())
	})

	t.Run("should fail with empty string", func(t *testing.T) {
		_, err := kernel.NewEmailAddress("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("should fail without the at sign", func(t *testing.T) {
		_, err := kernel.NewEmailAddress("ada.example.com")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "email must contain the '@' sign")
	})

	t.Run("should fail with more than 50 characters", func(t *testing.T) {
		raw := strings.Repeat("a", 45) + "@example.com"

		_, err := kernel.NewEmailAddress(raw)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept exactly 50 characters", func(t *testing.T) {
		raw := strings.Repeat("a", 38) + "@example.com"
		require.Len(t, raw, 50)

		e, err := kernel.NewEmailAddress(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, e.Value())
	})
}

func TestEmailAddress_Validate(t *testing.T) {
	t.Run("should fail validation for zero value", func(t *testing.T) {
		var e kernel.EmailAddress

		err := e.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrEmailAddressIsNotConstructed, err)
	})
}
