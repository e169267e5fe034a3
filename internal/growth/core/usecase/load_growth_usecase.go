package usecase

import (
	"context"
	"errors"
	"fmt"

	"growth-dashboard/internal/growth/core/domain"
	"growth-dashboard/internal/growth/core/ports"
	"growth-dashboard/internal/logging"
)

var ErrSourceUnreadable = errors.New("subscriber source unreadable")

type LoadGrowthUseCase struct {
	source     ports.RecordSourcePort
	aggregator *Aggregator
	log        *logging.Logger
}

func NewLoadGrowthUseCase(source ports.RecordSourcePort, log *logging.Logger) *LoadGrowthUseCase {
	return &LoadGrowthUseCase{
		source:     source,
		aggregator: NewAggregator(log),
		log:        log,
	}
}

// Execute reads the source once and aggregates it. Malformed rows never
// fail the load; only an unreadable source does.
func (uc *LoadGrowthUseCase) Execute(ctx context.Context) (*domain.GrowthReport, error) {
	records, err := uc.source.ReadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}

	report := uc.aggregator.Aggregate(records)
	if report.Skipped > 0 {
		uc.log.Info("aggregated %d rows, skipped %d", report.Accepted, report.Skipped)
	}
	return &report, nil
}
