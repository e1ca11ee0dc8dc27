package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"cart-service/internal/domain"
	"cart-service/internal/store"

	"github.com/google/uuid"
)

// NumberSource produces the display order number for a new session.
type NumberSource func() string

// RandomOrderNumber returns "#" followed by 4 decimal digits.
func RandomOrderNumber() string {
	return fmt.Sprintf("#%d", 1000+rand.Intn(9000))
}

// CartService owns the order's line items and derived totals. All mutations
// are serialized by the mutex, so each one completes fully (including the
// write-through save) before the next is accepted.
//
// Persistence is write-through after every mutation, but saves are suppressed
// until Hydrate has run once: an empty in-memory cart must not overwrite a
// snapshot that has not been read yet.
type CartService struct {
	mu    sync.Mutex
	store store.SnapshotStore
	guard *ClearGuard

	numberFn NumberSource

	items       []domain.LineItem
	orderNumber string
	sessionID   string
	status      domain.OrderStatus
	hydrated    bool
}

func NewCartService(st store.SnapshotStore, numberFn NumberSource, guardTimeout time.Duration) *CartService {
	if numberFn == nil {
		numberFn = RandomOrderNumber
	}
	return &CartService{
		store:       st,
		guard:       NewClearGuard(guardTimeout),
		numberFn:    numberFn,
		orderNumber: numberFn(),
		sessionID:   uuid.NewString(),
		status:      domain.StatusEditing,
	}
}

// Hydrate restores the line items from the persisted snapshot. It must run
// once before any mutation; a failed read degrades to an empty cart.
func (s *CartService) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx)
	s.hydrated = true
	if err != nil {
		log.Printf("Cart hydration failed, starting empty: %v", err)
		return err
	}
	s.items = items
	return nil
}

// Add merges a menu item into the cart: an existing line's quantity is
// incremented, otherwise a new line is appended with quantity 1. The line
// keeps the name/price/image/category copied at first add.
func (s *CartService) Add(ctx context.Context, item domain.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity++
			s.persist(ctx)
			return
		}
	}

	s.items = append(s.items, domain.LineItem{
		ID:       item.ID,
		Name:     item.Name,
		Price:    domain.Price(item.Price),
		Image:    item.Image,
		Category: item.Category,
		Quantity: 1,
	})
	s.persist(ctx)
}

// AdjustQuantity changes a line's quantity by delta, clamped at 0. A line
// reaching 0 is removed. An unknown id is a no-op.
func (s *CartService) AdjustQuantity(ctx context.Context, id uint64, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		q := s.items[i].Quantity + delta
		if q < 1 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = q
		}
		if len(s.items) == 0 {
			// Nothing left to clear, so a pending confirmation is moot.
			s.guard.Disarm()
		}
		s.persist(ctx)
		return
	}
}

// RequestClear routes the destructive clear through the confirmation guard.
// The first call arms the guard; a second call within the guard's timeout
// confirms and empties the cart.
func (s *CartService) RequestClear(ctx context.Context) GuardState {
	if s.guard.Request() {
		s.Clear(ctx)
	}
	return s.guard.State()
}

// Clear unconditionally removes every line item. Gating belongs to the
// guard, not here.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.guard.Disarm()
	s.persist(ctx)
}

// Checkout transitions the order to placed and returns the placed event
// payload. The engine does not reject an empty cart; callers enforce that
// precondition at the boundary.
func (s *CartService) Checkout() domain.OrderPlacedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = domain.StatusPlaced
	return domain.OrderPlacedEvent{
		SessionID:   s.sessionID,
		OrderNumber: s.orderNumber,
		Items:       s.copyItems(),
		Totals:      domain.ComputeTotals(s.items),
		PlacedAt:    time.Now(),
	}
}

// Reset starts a fresh order: editing status, no items, a new order number
// and session id, and the persisted snapshot erased.
func (s *CartService) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.status = domain.StatusEditing
	s.orderNumber = s.numberFn()
	s.sessionID = uuid.NewString()
	s.guard.Disarm()

	if s.store != nil {
		if err := s.store.Clear(ctx); err != nil {
			log.Printf("Failed to clear cart snapshot: %v", err)
		}
	}
}

func (s *CartService) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItems()
}

func (s *CartService) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeTotals(s.items)
}

func (s *CartService) Status() domain.OrderStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *CartService) OrderNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderNumber
}

func (s *CartService) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

func (s *CartService) GuardState() GuardState {
	return s.guard.State()
}

// persist write-throughs the current items. Callers hold the mutex.
// A failed write is logged and the in-memory cart stays authoritative.
func (s *CartService) persist(ctx context.Context) {
	if !s.hydrated || s.store == nil {
		return
	}
	if err := s.store.Save(ctx, s.copyItems()); err != nil {
		log.Printf("Failed to persist cart: %v", err)
	}
}

func (s *CartService) copyItems() []domain.LineItem {
	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}
