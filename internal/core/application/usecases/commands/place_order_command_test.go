package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/domain/model/order"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should carry the raw order untouched", func(t *testing.T) {
		raw := order.UnvalidatedOrder{
			OrderID: "order-001",
			Lines: []order.UnvalidatedOrderLine{
				{OrderLineID: "line-1", ProductCode: "bad-code", Quantity: "-1"},
			},
		}

		cmd, err := commands.NewPlaceOrderCommand(raw)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, raw, cmd.RawOrder())
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		cmd := commands.PlaceOrderCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
