package ports

import (
	"context"

	"growth-dashboard/internal/growth/core/domain"
)

// RecordSourcePort reads every subscriber record from the backing store.
// A returned error means the whole source is unreadable.
type RecordSourcePort interface {
	ReadRecords(ctx context.Context) ([]domain.Record, error)
}
