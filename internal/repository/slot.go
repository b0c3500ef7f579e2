package repository

import (
	"context"
	"errors"
)

var ErrSlotEmpty = errors.New("slot is empty")

// Slot is a durable key-value cell. Put replaces the whole value atomically.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
