package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"growth-dashboard/internal/subscriptions/core/domain"
	"growth-dashboard/internal/subscriptions/core/ports"

	"github.com/lib/pq"
)

type SubscriptionRepository struct {
	db DB
}

func NewSubscriptionRepository(db DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

var _ ports.SubscriptionRepositoryPort = (*SubscriptionRepository)(nil)

const insertSubscriptionSQL = `
INSERT INTO subscribers (
    user_id,
    source,
    subscribed_at,
    tags,
    metadata,
    dedupe_key
) VALUES (
    $1, $2, $3,
    $4, $5, $6
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *SubscriptionRepository) InsertSubscription(ctx context.Context, s *domain.Subscription) (bool, error) {
	var source any
	if s.Source != "" {
		source = s.Source
	}

	metadataJSON, err := json.Marshal(s.Metadata)
	if err != nil {
		return false, fmt.Errorf("encode metadata: %w", err)
	}

	res, err := r.db.ExecContext(ctx, insertSubscriptionSQL,
		s.UserID,
		source,
		s.SubscribedAt,
		pq.Array(s.Tags),
		metadataJSON,
		s.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// 0 rows means ON CONFLICT skipped a duplicate
	return rows > 0, nil
}
