package usecase

import (
	"time"

	"growth-dashboard/internal/growth/core/domain"

	"github.com/samber/lo"
)

// Cutoff returns the earliest instant kept by the filter. ok is false for
// FilterAll, which keeps everything.
func Cutoff(filter domain.TimeFilter, now time.Time) (cutoff time.Time, ok bool) {
	switch filter {
	case domain.Filter7Days:
		return now.AddDate(0, 0, -7), true
	case domain.Filter30Days:
		return now.AddDate(0, 0, -30), true
	case domain.Filter3Months:
		return now.AddDate(0, -3, 0), true
	case domain.Filter12Months:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// Slice keeps the points dated on or after the filter's cutoff.
// Cumulative values are not rebased to the window start.
func Slice(series domain.Series, filter domain.TimeFilter, now time.Time) domain.Series {
	cutoff, ok := Cutoff(filter, now)
	if !ok {
		return series
	}
	return lo.Filter(series, func(p domain.Point, _ int) bool {
		return !p.Date.Before(cutoff)
	})
}

// SliceMonthly is Slice for month buckets: anything shorter than 30 days
// is widened to 30 days.
func SliceMonthly(series domain.Series, filter domain.TimeFilter, now time.Time) domain.Series {
	if filter == domain.Filter7Days {
		filter = domain.Filter30Days
	}
	return Slice(series, filter, now)
}

// SliceReport applies the filter to all three series of a report.
func SliceReport(report domain.GrowthReport, filter domain.TimeFilter, now time.Time) domain.GrowthReport {
	report.Cumulative = Slice(report.Cumulative, filter, now)
	report.Daily = Slice(report.Daily, filter, now)
	report.Monthly = SliceMonthly(report.Monthly, filter, now)
	return report
}
