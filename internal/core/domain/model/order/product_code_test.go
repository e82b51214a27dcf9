package order_test

import (
	"strings"
	"testing"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductCode(t *testing.T) {
	t.Run("should create widget variant for code starting with W", func(t *testing.T) {
		code, err := order.NewProductCode("W1234")

		require.NoError(t, err)
		require.NoError(t, code.Validate())
		assert.Equal(t, order.WidgetCode, code.Kind())
		assert.Equal(t, "W1234", code.Value())
	})

	t.Run("should create gizmo variant for code starting with G", func(t *testing.T) {
		code, err := order.NewProductCode("G123")

		require.NoError(t, err)
		assert.Equal(t, order.GizmoCode, code.Kind())
		assert.Equal(t, "G123", code.Value())
	})

	t.Run("should fail with empty code", func(t *testing.T) {
		_, err := order.NewProductCode("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unrecognized leading character", func(t *testing.T) {
		_, err := order.NewProductCode("X1234")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "productCode")
		assert.Contains(t, err.Error(), "'W' or 'G'")
	})

	t.Run("should fail with code longer than 50 characters", func(t *testing.T) {
		_, err := order.NewProductCode("W" + strings.Repeat("1", 50))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestProductCode_Validate(t *testing.T) {
	t.Run("should fail validation for zero value", func(t *testing.T) {
		var code order.ProductCode

		err := code.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrProductCodeIsNotConstructed, err)
	})
}

func TestProductCodeKind_String(t *testing.T) {
	assert.Equal(t, "Widget", order.WidgetCode.String())
	assert.Equal(t, "Gizmo", order.GizmoCode.String())
	assert.Equal(t, "Unknown", order.UnknownProductCodeKind.String())
	assert.Equal(t, "Unknown", order.ProductCodeKind(99).String())
}

func TestProductCodeKind_Validate(t *testing.T) {
	require.NoError(t, order.WidgetCode.Validate())
	require.NoError(t, order.GizmoCode.Validate())
	require.Error(t, order.UnknownProductCodeKind.Validate())
}
