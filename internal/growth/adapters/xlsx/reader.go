package xlsx

import (
	"context"
	"errors"
	"fmt"

	"growth-dashboard/internal/growth/core/domain"
	"growth-dashboard/internal/growth/core/ports"

	"github.com/xuri/excelize/v2"
)

var ErrNoSheets = errors.New("workbook has no sheets")

// Reader reads subscriber records from the first sheet of a workbook. The
// sheet follows the CSV export layout: header row first.
type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

var _ ports.RecordSourcePort = (*Reader)(nil)

func (r *Reader) ReadRecords(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", r.path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	records := []domain.Record{}
	if len(rows) == 0 {
		return records, nil
	}
	columns := domain.NewColumns(rows[0])
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		records = append(records, columns.Record(row))
	}
	return records, nil
}
