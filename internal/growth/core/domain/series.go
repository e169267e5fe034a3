package domain

import "time"

// DateKeyLayout is the canonical YYYY-MM-DD layout of a DateKey.
const DateKeyLayout = "2006-01-02"

// Point is a single (date, value) sample. Date is always UTC midnight.
type Point struct {
	Date  time.Time
	Value int
}

// Key returns the point's DateKey.
func (p Point) Key() string {
	return p.Date.Format(DateKeyLayout)
}

// Series is ordered by Date ascending, dates unique.
type Series []Point

func (s Series) Values() []int {
	out := make([]int, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// GrowthReport is the output of one aggregation run.
type GrowthReport struct {
	Cumulative Series // running total per day
	Daily      Series // new subscribers per day
	Monthly    Series // rounded mean daily count per month, dated on the 1st

	Accepted int // rows that produced a date
	Skipped  int // rows without a usable date
}
