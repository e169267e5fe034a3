package ports

import (
	"context"

	"growth-dashboard/internal/subscriptions/core/domain"
)

type SubscriptionRepositoryPort interface {
	// InsertSubscription:
	//   created = true,  err = nil  -> new row
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> DB error
	InsertSubscription(ctx context.Context, s *domain.Subscription) (created bool, err error)
}
