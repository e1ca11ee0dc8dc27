package services

import (
	"context"
	"testing"
	"time"

	"cart-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestClearGuard_RequestArmsThenConfirms(t *testing.T) {
	guard := NewClearGuard(time.Second)

	assert.Equal(t, GuardIdle, guard.State())
	assert.False(t, guard.Request(), "first request must arm, not execute")
	assert.Equal(t, GuardArmed, guard.State())

	assert.True(t, guard.Request(), "second request while armed confirms")
	assert.Equal(t, GuardIdle, guard.State())
}

func TestClearGuard_TimeoutDisarms(t *testing.T) {
	guard := NewClearGuard(30 * time.Millisecond)

	assert.False(t, guard.Request())
	assert.Equal(t, GuardArmed, guard.State())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, GuardIdle, guard.State())

	// A request after the timeout starts a fresh armed period.
	assert.False(t, guard.Request())
	assert.Equal(t, GuardArmed, guard.State())
}

func TestClearGuard_DisarmCancelsPendingTimer(t *testing.T) {
	guard := NewClearGuard(30 * time.Millisecond)

	assert.False(t, guard.Request())
	guard.Disarm()
	assert.Equal(t, GuardIdle, guard.State())

	// Re-arm immediately; the stale timer from the first period must not
	// disarm this newer one.
	assert.False(t, guard.Request())
	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, GuardArmed, guard.State())

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, GuardIdle, guard.State())
}

func TestCartService_RequestClearFlow(t *testing.T) {
	cart, _ := newHydratedCart(t, []domain.LineItem{
		CreateMockLineItem(TestBurgerID, TestBurgerName, TestBurgerPrice, 2),
	})

	// First request arms without touching the cart.
	state := cart.RequestClear(context.Background())
	assert.Equal(t, GuardArmed, state)
	assert.Len(t, cart.Items(), 1)

	// Second request confirms and empties the cart.
	state = cart.RequestClear(context.Background())
	assert.Equal(t, GuardIdle, state)
	assert.Empty(t, cart.Items())
}

func TestCartService_RequestClearTimesOut(t *testing.T) {
	cart, _ := newHydratedCart(t, []domain.LineItem{
		CreateMockLineItem(TestBurgerID, TestBurgerName, TestBurgerPrice, 2),
	})

	assert.Equal(t, GuardArmed, cart.RequestClear(context.Background()))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, GuardIdle, cart.GuardState())
	assert.Len(t, cart.Items(), 1, "timeout must not clear the cart")
}

func TestCartService_GuardDisarmsWhenCartDrains(t *testing.T) {
	cart, _ := newHydratedCart(t, []domain.LineItem{
		CreateMockLineItem(TestBurgerID, TestBurgerName, TestBurgerPrice, 1),
	})

	assert.Equal(t, GuardArmed, cart.RequestClear(context.Background()))

	// Draining the last item disarms without executing.
	cart.AdjustQuantity(context.Background(), TestBurgerID, -1)
	assert.Equal(t, GuardIdle, cart.GuardState())
	assert.Empty(t, cart.Items())
}
