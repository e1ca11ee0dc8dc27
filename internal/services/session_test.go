package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cart-service/internal/domain"
	"cart-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderSession_CheckoutPublishesPlacedEvent(t *testing.T) {
	cart, _ := newHydratedCart(t, []domain.LineItem{
		CreateMockLineItem(TestBurgerID, TestBurgerName, 10.00, 2),
	})

	mockPub := new(mocks.MockPublisher)
	mockPub.On("Publish", mock.Anything, "order.placed", mock.AnythingOfType("domain.OrderPlacedEvent")).Return(nil)

	session := NewOrderSession(cart, mockPub)

	evt := session.Checkout(context.Background())
	assert.Equal(t, domain.StatusPlaced, cart.Status())
	assert.Equal(t, cart.OrderNumber(), evt.OrderNumber)
	assert.InDelta(t, 22.00, evt.Totals.Total, 1e-9)

	time.Sleep(100 * time.Millisecond)
	mockPub.AssertExpectations(t)
}

func TestOrderSession_CheckoutSurvivesPublishFailure(t *testing.T) {
	cart, _ := newHydratedCart(t, []domain.LineItem{
		CreateMockLineItem(TestBurgerID, TestBurgerName, TestBurgerPrice, 1),
	})

	mockPub := new(mocks.MockPublisher)
	mockPub.On("Publish", mock.Anything, "order.placed", mock.Anything).Return(errors.New("broker unavailable"))

	session := NewOrderSession(cart, mockPub)

	session.Checkout(context.Background())
	assert.Equal(t, domain.StatusPlaced, cart.Status())

	time.Sleep(100 * time.Millisecond)
	mockPub.AssertExpectations(t)
}

func TestOrderSession_DismissResetsForNextOrder(t *testing.T) {
	cart, mockStore := newHydratedCart(t, []domain.LineItem{
		CreateMockLineItem(TestBurgerID, TestBurgerName, TestBurgerPrice, 1),
		CreateMockLineItem(TestDrinkID, TestDrinkName, TestDrinkPrice, 3),
	})

	mockPub := new(mocks.MockPublisher)
	mockPub.On("Publish", mock.Anything, "order.placed", mock.Anything).Return(nil).Maybe()

	session := NewOrderSession(cart, mockPub)

	placedNumber := cart.OrderNumber()
	session.Checkout(context.Background())
	assert.Equal(t, domain.StatusPlaced, cart.Status())

	session.DismissPlaced(context.Background())
	assert.Equal(t, domain.StatusEditing, cart.Status())
	assert.Empty(t, cart.Items())
	assert.NotEqual(t, placedNumber, cart.OrderNumber())
	mockStore.AssertCalled(t, "Clear", mock.Anything)
}
