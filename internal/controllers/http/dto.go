package http

import "cart-service/internal/domain"

type AddItemRequest struct {
	MenuItemID uint64 `json:"menuItemId" binding:"required"`
}

type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type CartResponse struct {
	Items       []domain.LineItem  `json:"items"`
	Totals      domain.Totals      `json:"totals"`
	Status      domain.OrderStatus `json:"status"`
	OrderNumber string             `json:"orderNumber"`
	GuardState  string             `json:"clearConfirm"`
}

type CheckoutResponse struct {
	OrderNumber string        `json:"orderNumber"`
	SessionID   string        `json:"sessionId"`
	Totals      domain.Totals `json:"totals"`
}
