package domain

// Record is one row of a subscriber export. Only the date columns are kept.
type Record struct {
	SubscribedAt string // "subscribed at" column, preferred
	DateJoined   string // "date_joined" column, fallback
}

// DateText returns the first non-empty date column.
func (r Record) DateText() string {
	if r.SubscribedAt != "" {
		return r.SubscribedAt
	}
	return r.DateJoined
}
