package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"growth-dashboard/internal/logging"
	"growth-dashboard/internal/subscriptions/core/domain"
	"growth-dashboard/internal/subscriptions/core/ports"
)

var (
	ErrInvalidSubscription = errors.New("invalid subscription")
	ErrFutureTime          = errors.New("subscribed_at cannot be in the future")
)

type StoreSubscriptionUseCase struct {
	repo ports.SubscriptionRepositoryPort
	now  func() time.Time
	log  *logging.Logger
}

func NewStoreSubscriptionUseCase(repo ports.SubscriptionRepositoryPort, now func() time.Time, log *logging.Logger) *StoreSubscriptionUseCase {
	if now == nil {
		now = time.Now
	}
	return &StoreSubscriptionUseCase{repo: repo, now: now, log: log}
}

type StoreSubscriptionInput struct {
	UserID       string
	Source       string
	SubscribedAt int64
	Tags         []string
	Metadata     map[string]any
}

func (uc *StoreSubscriptionUseCase) Execute(ctx context.Context, in StoreSubscriptionInput) (bool, error) {
	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	subscribedAt := time.Unix(in.SubscribedAt, 0).UTC()

	if in.Tags == nil {
		in.Tags = []string{}
	}
	if in.Metadata == nil {
		in.Metadata = map[string]any{}
	}

	s := &domain.Subscription{
		UserID:       in.UserID,
		Source:       in.Source,
		SubscribedAt: subscribedAt,
		Tags:         in.Tags,
		Metadata:     in.Metadata,
		DedupeKey:    buildDedupeKey(in, subscribedAt),
	}

	created, err := uc.repo.InsertSubscription(ctx, s)
	if err != nil {
		return false, fmt.Errorf("insert subscription: %w", err)
	}
	if !created {
		uc.log.Debug("duplicate subscription %s", s.DedupeKey)
	}
	return created, nil
}

// user_id + source + unix seconds
func buildDedupeKey(in StoreSubscriptionInput, t time.Time) string {
	return fmt.Sprintf("%s|%s|%d", in.UserID, in.Source, t.Unix())
}

type BulkStoreSubscriptionsInput struct {
	Subscriptions []StoreSubscriptionInput
}

type BulkStoreSubscriptionsResult struct {
	Created    int
	Duplicates int
}

// BulkStore validates every item before storing any of them.
func (uc *StoreSubscriptionUseCase) BulkStore(ctx context.Context, in BulkStoreSubscriptionsInput) (BulkStoreSubscriptionsResult, error) {
	var res BulkStoreSubscriptionsResult

	for i, s := range in.Subscriptions {
		if err := uc.validateInput(s); err != nil {
			return res, fmt.Errorf("item %d: %w", i, err)
		}
	}

	for _, s := range in.Subscriptions {
		ok, err := uc.Execute(ctx, s)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	uc.log.Info("bulk subscriptions: %d created, %d duplicates", res.Created, res.Duplicates)
	return res, nil
}

func (uc *StoreSubscriptionUseCase) validateInput(in StoreSubscriptionInput) error {
	if in.UserID == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidSubscription)
	}
	if in.SubscribedAt <= 0 {
		return fmt.Errorf("%w: subscribed_at must be a positive unix timestamp", ErrInvalidSubscription)
	}
	if in.SubscribedAt > uc.now().Unix() {
		return ErrFutureTime
	}
	return nil
}
