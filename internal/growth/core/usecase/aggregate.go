package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"growth-dashboard/internal/growth/core/domain"
	"growth-dashboard/internal/logging"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

var ErrInvalidDate = errors.New("invalid date")

// Aggregator turns raw subscriber records into the three growth series.
type Aggregator struct {
	log *logging.Logger
}

func NewAggregator(log *logging.Logger) *Aggregator {
	return &Aggregator{log: log}
}

// Aggregate counts records per calendar day and derives the cumulative,
// daily and monthly series. Rows without a usable date are skipped.
func (a *Aggregator) Aggregate(records []domain.Record) domain.GrowthReport {
	var report domain.GrowthReport
	countsByDay := make(map[string]int)

	for i, rec := range records {
		text := rec.DateText()
		if text == "" {
			report.Skipped++
			a.log.Debug("row %d: no date column, skipped", i+1)
			continue
		}
		date, err := ParseDayFirstDate(text)
		if err != nil {
			report.Skipped++
			a.log.Warn("row %d: %v, skipped", i+1, err)
			continue
		}
		countsByDay[date.Format(domain.DateKeyLayout)]++
		report.Accepted++
	}

	// YYYY-MM-DD keys sort chronologically.
	keys := lo.Keys(countsByDay)
	sort.Strings(keys)

	report.Cumulative = make(domain.Series, 0, len(keys))
	report.Daily = make(domain.Series, 0, len(keys))
	running := 0
	for _, key := range keys {
		date, _ := time.Parse(domain.DateKeyLayout, key)
		count := countsByDay[key]
		running += count
		report.Cumulative = append(report.Cumulative, domain.Point{Date: date, Value: running})
		report.Daily = append(report.Daily, domain.Point{Date: date, Value: count})
	}

	report.Monthly = monthlyAverages(report.Daily)
	return report
}

// monthlyAverages divides each month's total by the number of days that
// have data in that month, not by the calendar length of the month.
func monthlyAverages(daily domain.Series) domain.Series {
	out := domain.Series{}
	var (
		bucketStart time.Time
		counts      []int
	)
	flush := func() {
		if len(counts) == 0 {
			return
		}
		mean, _ := stats.Mean(stats.LoadRawData(counts))
		rounded, _ := stats.Round(mean, 0)
		out = append(out, domain.Point{Date: bucketStart, Value: int(rounded)})
		counts = counts[:0]
	}

	for _, p := range daily {
		monthStart := time.Date(p.Date.Year(), p.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		if !monthStart.Equal(bucketStart) {
			flush()
			bucketStart = monthStart
		}
		counts = append(counts, p.Value)
	}
	flush()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ParseDayFirstDate parses "DD/MM/YYYY[ HH:MM[:SS]]" and returns the
// calendar date at UTC midnight. The time of day is ignored.
func ParseDayFirstDate(text string) (time.Time, error) {
	datePart, _, _ := strings.Cut(strings.TrimSpace(text), " ")
	parts := strings.Split(datePart, "/")
	if len(parts) != 3 || len(parts[2]) != 4 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}

	day, errDay := strconv.Atoi(parts[0])
	month, errMonth := strconv.Atoi(parts[1])
	year, errYear := strconv.Atoi(parts[2])
	if err := errors.Join(errDay, errMonth, errYear); err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31/02 into March; reject instead.
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return date, nil
}
