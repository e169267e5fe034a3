package postgres

import (
	"context"
	"time"

	"growth-dashboard/internal/growth/core/domain"
	"growth-dashboard/internal/growth/core/ports"
)

// exportLayout mirrors the CSV export's day-first timestamp.
const exportLayout = "02/01/2006 15:04:05"

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// SubscriberRepository reads subscription timestamps stored by the
// subscriptions service.
type SubscriberRepository struct {
	db DB
}

func NewSubscriberRepository(db DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

var _ ports.RecordSourcePort = (*SubscriberRepository)(nil)

const selectSubscribedAtSQL = `
SELECT subscribed_at
FROM subscribers
ORDER BY subscribed_at`

func (r *SubscriberRepository) ReadRecords(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, selectSubscribedAtSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var subscribedAt time.Time
		if err := rows.Scan(&subscribedAt); err != nil {
			return nil, err
		}
		records = append(records, domain.Record{
			SubscribedAt: subscribedAt.UTC().Format(exportLayout),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
