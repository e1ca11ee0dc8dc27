package domain

import "time"

type OrderPlacedEvent struct {
	SessionID   string     `json:"sessionId"`
	OrderNumber string     `json:"orderNumber"`
	Items       []LineItem `json:"items"`
	Totals      Totals     `json:"totals"`
	PlacedAt    time.Time  `json:"placedAt"`
}
