package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"growth-dashboard/internal/growth/core/domain"
	"growth-dashboard/internal/growth/core/ports"
)

var ErrMissingHeader = errors.New("csv has no header row")

// Reader reads subscriber records from a CSV export on disk. The file is
// read in full on every call.
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

	content, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return Parse(bytes.NewReader(content))
}

// Parse reads a header row followed by data rows. Rows may have any number
// of fields and quotes are handled leniently.
func Parse(src io.Reader) ([]domain.Record, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := domain.NewColumns(header)

	records := []domain.Record{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		records = append(records, columns.Record(row))
	}
	return records, nil
}
