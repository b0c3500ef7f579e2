package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/ai-notes/pkg/database"
)

type PostgresSlot struct {
	db database.Tx
}

// NewPostgresSlot expects the kv_slots table created by database.Migrate.
func NewPostgresSlot(db database.Tx) *PostgresSlot {
	return &PostgresSlot{db: db}
}

func (p *PostgresSlot) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.db.QueryRow(ctx, "SELECT value FROM kv_slots WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("get slot: %v", err)
	}

	return value, nil
}

func (p *PostgresSlot) Put(ctx context.Context, key string, value []byte) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO kv_slots (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("put slot: %v", err)
	}

	return nil
}
