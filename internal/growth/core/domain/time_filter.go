package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidTimeFilter = errors.New("invalid time filter")

type TimeFilter string

const (
	FilterAll      TimeFilter = "all"
	Filter7Days    TimeFilter = "7days"
	Filter30Days   TimeFilter = "30days"
	Filter3Months  TimeFilter = "3months"
	Filter12Months TimeFilter = "12months"
)

const defaultFilter = FilterAll

// TimeFilters lists the selectable ranges in display order.
var TimeFilters = []TimeFilter{FilterAll, Filter7Days, Filter30Days, Filter3Months, Filter12Months}

// ParseTimeFilter accepts the five known values; "" means all.
func ParseTimeFilter(s string) (TimeFilter, error) {
	if s == "" {
		return defaultFilter, nil
	}
	for _, f := range TimeFilters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeFilter, s)
}

// Label is the human readable selector text.
func (f TimeFilter) Label() string {
	switch f {
	case Filter7Days:
		return "Last 7 Days"
	case Filter30Days:
		return "Last 30 Days"
	case Filter3Months:
		return "Last 3 Months"
	case Filter12Months:
		return "Last 12 Months"
	default:
		return "All Time"
	}
}

// Coarse reports whether the range is long enough that axis labels
// switch to quarter starts.
func (f TimeFilter) Coarse() bool {
	return f == FilterAll || f == Filter12Months
}
