package fiber

// CreateSubscriptionRequest represents one sign-up
// @Description Subscription creation DTO
type CreateSubscriptionRequest struct {
	UserID       string         `json:"user_id" example:"user_123"`
	Source       string         `json:"source" example:"newsletter"`
	SubscribedAt int64          `json:"subscribed_at" example:"1709251200"`
	Tags         []string       `json:"tags"`
	Metadata     map[string]any `json:"metadata"`
}

type CreateSubscriptionResponse struct {
	Status string `json:"status" example:"created"`
}

type BulkCreateSubscriptionsRequest struct {
	Subscriptions []CreateSubscriptionRequest `json:"subscriptions"`
}

type BulkCreateSubscriptionsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_subscription"`
	Message string `json:"message" example:"invalid subscription: user_id is required"`
}
