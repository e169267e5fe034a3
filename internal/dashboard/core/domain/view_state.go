package domain

import growth "growth-dashboard/internal/growth/core/domain"

// ViewState is the per-client UI state the page is rendered from. It is
// built by the request handler and passed down explicitly.
type ViewState struct {
	ClientID string
	Filter   growth.TimeFilter
	Theme    Theme
}
