package services

import (
	"context"
	"log"

	"cart-service/internal/domain"
	rabbit "cart-service/internal/infra/rabbitmq"
)

// OrderSession wraps one order lifecycle around the cart: checkout produces
// the placed confirmation, dismissing it resets the cart for the next order.
type OrderSession struct {
	cart      *CartService
	publisher rabbit.PublisherInterface
}

func NewOrderSession(cart *CartService, publisher rabbit.PublisherInterface) *OrderSession {
	return &OrderSession{cart: cart, publisher: publisher}
}

// Checkout transitions the order to placed and publishes the order.placed
// event. Publishing is fire-and-forget: a broker failure is logged and never
// blocks the checkout.
func (s *OrderSession) Checkout(ctx context.Context) domain.OrderPlacedEvent {
	evt := s.cart.Checkout()

	if s.publisher != nil {
		go func() {
			if err := s.publisher.Publish(context.Background(), "order.placed", evt); err != nil {
				log.Printf("Failed to publish order.placed for %s: %v", evt.OrderNumber, err)
			}
		}()
	}

	return evt
}

// DismissPlaced closes the placed confirmation: the cart empties, a new
// order number is generated and the persisted snapshot is erased so a
// reload cannot resurrect the completed order.
func (s *OrderSession) DismissPlaced(ctx context.Context) {
	s.cart.Reset(ctx)
}
