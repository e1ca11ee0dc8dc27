package redis

import (
	"context"
	"fmt"
	"log"

	"cart-service/internal/domain"
	"cart-service/internal/store"

	"github.com/go-redis/redis/v8"
)

const DefaultKey = "quickbite:cart"

type snapshotStore struct {
	rdb *redis.Client
	key string
}

func NewSnapshotStore(rdb *redis.Client, key string) store.SnapshotStore {
	if key == "" {
		key = DefaultKey
	}
	return &snapshotStore{rdb: rdb, key: key}
}

func (s *snapshotStore) Save(ctx context.Context, items []domain.LineItem) error {
	data, err := store.EncodeSnapshot(items)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write cart snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) Load(ctx context.Context) ([]domain.LineItem, error) {
	b, err := s.rdb.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return []domain.LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart snapshot: %w", err)
	}

	items, err := store.DecodeSnapshot(b)
	if err != nil {
		// Corrupt value: drop it and start with an empty cart.
		log.Printf("Cart snapshot corrupted, discarding: %v", err)
		if delErr := s.rdb.Del(ctx, s.key).Err(); delErr != nil {
			log.Printf("Failed to delete corrupted snapshot: %v", delErr)
		}
		return []domain.LineItem{}, nil
	}
	return items, nil
}

func (s *snapshotStore) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear cart snapshot: %w", err)
	}
	return nil
}

var _ store.SnapshotStore = (*snapshotStore)(nil)
