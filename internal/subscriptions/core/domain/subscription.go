package domain

import "time"

// Subscription is one sign-up as stored in the subscribers table.
type Subscription struct {
	UserID       string
	Source       string
	SubscribedAt time.Time
	Tags         []string
	Metadata     map[string]any
	DedupeKey    string
}
