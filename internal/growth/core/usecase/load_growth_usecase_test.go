package usecase_test

import (
	"context"
	"errors"
	"testing"

	"growth-dashboard/internal/growth/core/domain"
	"growth-dashboard/internal/growth/core/usecase"
	"growth-dashboard/internal/logging"
)

// fakeRecordSource implements RecordSourcePort for tests.
type fakeRecordSource struct {
	ReadFn func(ctx context.Context) ([]domain.Record, error)
	calls  int
}

func (f *fakeRecordSource) ReadRecords(ctx context.Context) ([]domain.Record, error) {
	f.calls++
	if f.ReadFn != nil {
		return f.ReadFn(ctx)
	}
	return nil, nil
}

func TestLoadGrowth_Success(t *testing.T) {
	src := &fakeRecordSource{
		ReadFn: func(ctx context.Context) ([]domain.Record, error) {
			return subscribed("01/01/2024", "01/01/2024", "02/01/2024", "bogus"), nil
		},
	}
	uc := usecase.NewLoadGrowthUseCase(src, logging.Discard())

	report, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("expected source to be read once, got %d", src.calls)
	}
	if len(report.Cumulative) != 2 || report.Cumulative[1].Value != 3 {
		t.Fatalf("unexpected cumulative: %+v", report.Cumulative)
	}
	if report.Skipped != 1 {
		t.Fatalf("expected 1 skipped row, got %d", report.Skipped)
	}
}

func TestLoadGrowth_EmptySourceIsNotAnError(t *testing.T) {
	uc := usecase.NewLoadGrowthUseCase(&fakeRecordSource{}, logging.Discard())

	report, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Cumulative) != 0 {
		t.Fatalf("expected no data, got %+v", report.Cumulative)
	}
}

func TestLoadGrowth_SourceError(t *testing.T) {
	ioErr := errors.New("open data/data.csv: no such file or directory")
	src := &fakeRecordSource{
		ReadFn: func(ctx context.Context) ([]domain.Record, error) {
			return nil, ioErr
		},
	}
	uc := usecase.NewLoadGrowthUseCase(src, logging.Discard())

	report, err := uc.Execute(context.Background())
	if report != nil {
		t.Fatalf("expected nil report on failure")
	}
	if !errors.Is(err, usecase.ErrSourceUnreadable) || !errors.Is(err, ioErr) {
		t.Fatalf("expected wrapped ErrSourceUnreadable, got %v", err)
	}
}
