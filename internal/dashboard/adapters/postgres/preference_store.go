package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"growth-dashboard/internal/dashboard/core/ports"
)

type PreferenceStore struct {
	db DB
}

func NewPreferenceStore(db DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

var _ ports.PreferenceStorePort = (*PreferenceStore)(nil)

const selectPreferenceSQL = `
SELECT value
FROM preferences
WHERE client_id = $1 AND key = $2`

const upsertPreferenceSQL = `
INSERT INTO preferences (client_id, key, value, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (client_id, key)
DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();
`

func (s *PreferenceStore) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, selectPreferenceSQL, clientID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select preference: %w", err)
	}
	return value, true, nil
}

func (s *PreferenceStore) Put(ctx context.Context, clientID, key, value string) error {
	if _, err := s.db.ExecContext(ctx, upsertPreferenceSQL, clientID, key, value); err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}
	return nil
}
