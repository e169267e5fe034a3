package domain

import "strings"

const (
	ColumnSubscribedAt = "subscribed at"
	ColumnDateJoined   = "date_joined"
)

// Columns locates the date columns in a header row. Missing columns are -1.
type Columns struct {
	subscribedAt int
	dateJoined   int
}

func NewColumns(header []string) Columns {
	c := Columns{subscribedAt: -1, dateJoined: -1}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		switch {
		case name == ColumnSubscribedAt && c.subscribedAt < 0:
			c.subscribedAt = i
		case name == ColumnDateJoined && c.dateJoined < 0:
			c.dateJoined = i
		}
	}
	return c
}

// Record picks the date cells out of a row. Short rows yield empty cells.
func (c Columns) Record(row []string) Record {
	return Record{
		SubscribedAt: cell(row, c.subscribedAt),
		DateJoined:   cell(row, c.dateJoined),
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
