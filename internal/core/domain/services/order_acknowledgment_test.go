package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
)

func TestOrderAcknowledgmentService_Acknowledge(t *testing.T) {
	priced := mustPricedOrder(validRawOrder(), decimal.RequireFromString("50.00"))

	t.Run("should return a sent record when the sender succeeds", func(t *testing.T) {
		renderer := new(MockLetterRenderer)
		sender := new(MockAcknowledgmentSender)
		mock.InOrder(
			renderer.On("Render", priced).Return(order.HTMLLetter("<p>Thanks!</p>")).Once(),
			sender.On("Send", mock.AnythingOfType("order.Acknowledgment")).Return(order.Sent).Once(),
		)

		svc := services.NewOrderAcknowledgmentService(renderer, sender)
		sent, err := svc.Acknowledge(priced)

		require.NoError(t, err)
		require.NotNil(t, sent)
		assert.True(t, sent.OrderID().IsEqual(priced.ID()))
		assert.Equal(t, "ada@example.com", sent.Email().Value())
		renderer.AssertExpectations(t)
		sender.AssertExpectations(t)
	})

	t.Run("should pass the rendered letter to the sender", func(t *testing.T) {
		renderer := new(MockLetterRenderer)
		sender := new(MockAcknowledgmentSender)
		renderer.On("Render", priced).Return(order.HTMLLetter("<h1>Your order</h1>")).Once()
		sender.On("Send", mock.MatchedBy(func(ack order.Acknowledgment) bool {
			return ack.Letter() == order.HTMLLetter("<h1>Your order</h1>") &&
				ack.Email().Value() == "ada@example.com"
		})).Return(order.Sent).Once()

		svc := services.NewOrderAcknowledgmentService(renderer, sender)
		_, err := svc.Acknowledge(priced)

		require.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("should return nil without error when the sender reports not sent", func(t *testing.T) {
		renderer := new(MockLetterRenderer)
		sender := new(MockAcknowledgmentSender)
		renderer.On("Render", priced).Return(order.HTMLLetter("<p>Thanks!</p>")).Once()
		sender.On("Send", mock.Anything).Return(order.NotSent).Once()

		svc := services.NewOrderAcknowledgmentService(renderer, sender)
		sent, err := svc.Acknowledge(priced)

		require.NoError(t, err)
		assert.Nil(t, sent)
	})

	t.Run("should reject an unconstructed priced order", func(t *testing.T) {
		renderer := new(MockLetterRenderer)
		sender := new(MockAcknowledgmentSender)

		svc := services.NewOrderAcknowledgmentService(renderer, sender)
		_, err := svc.Acknowledge(order.PricedOrder{})

		require.Error(t, err)
		renderer.AssertNotCalled(t, "Render", mock.Anything)
		sender.AssertNotCalled(t, "Send", mock.Anything)
	})
}
