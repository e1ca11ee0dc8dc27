package store

import (
	"context"
	"encoding/json"

	"cart-service/internal/domain"
)

// SnapshotStore persists the cart's line items to a single durable slot.
// Load never fails on corruption: a value that does not decode is discarded
// and an empty collection is returned.
type SnapshotStore interface {
	Save(ctx context.Context, items []domain.LineItem) error
	Load(ctx context.Context) ([]domain.LineItem, error)
	Clear(ctx context.Context) error
}

// DecodeSnapshot parses a stored snapshot. A nil slice with a non-nil error
// means the value is corrupt and should be discarded by the caller. Entries
// that violate the cart invariants (quantity < 1, repeated id) are dropped.
func DecodeSnapshot(b []byte) ([]domain.LineItem, error) {
	var raw []domain.LineItem
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}

	items := make([]domain.LineItem, 0, len(raw))
	seen := make(map[uint64]bool, len(raw))
	for _, it := range raw {
		if it.Quantity < 1 || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		items = append(items, it)
	}
	return items, nil
}

func EncodeSnapshot(items []domain.LineItem) ([]byte, error) {
	if items == nil {
		items = []domain.LineItem{}
	}
	return json.Marshal(items)
}
