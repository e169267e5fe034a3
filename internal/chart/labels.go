package chart

import (
	"growth-dashboard/internal/chart/geometry"
	"growth-dashboard/internal/growth/core/domain"
)

// dailyLabels labels every sixth point, leaving the edges clear.
func dailyLabels() geometry.LabelRule {
	return func(s domain.Series, i int) (string, bool) {
		if i == 0 || i >= len(s)-3 || i%6 != 0 {
			return "", false
		}
		return s[i].Date.Format(layoutAxisDay), true
	}
}

// cumulativeLabels switches to quarter starts for long ranges.
func cumulativeLabels(filter domain.TimeFilter) geometry.LabelRule {
	if !filter.Coarse() {
		return dailyLabels()
	}
	return func(s domain.Series, i int) (string, bool) {
		if i == 0 || i >= len(s)-3 {
			return "", false
		}
		if !startsQuarter(s, i) {
			return "", false
		}
		return s[i].Date.Format(layoutAxisMonth), true
	}
}

// monthlyLabels labels every other month, or quarter starts for long ranges.
func monthlyLabels(filter domain.TimeFilter) geometry.LabelRule {
	return func(s domain.Series, i int) (string, bool) {
		if i == 0 || i >= len(s)-1 {
			return "", false
		}
		show := i%2 == 0
		if filter.Coarse() {
			show = startsQuarter(s, i)
		}
		if !show {
			return "", false
		}
		return s[i].Date.Format(layoutAxisMonth), true
	}
}

// startsQuarter reports whether point i is the first point of a January,
// April, July or October. i must be > 0.
func startsQuarter(s domain.Series, i int) bool {
	cur, prev := s[i].Date, s[i-1].Date
	return cur.Month() != prev.Month() && isQuarterStart(cur)
}
