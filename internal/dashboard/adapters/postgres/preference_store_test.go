package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
)

type fakeResult struct{}

func (fakeResult) LastInsertId() (int64, error) { return 0, errors.New("not implemented") }
func (fakeResult) RowsAffected() (int64, error) { return 1, nil }

// fakeRow implements RowScanner for tests.
type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.value
	return nil
}

// fakeDB implements DB interface for tests.
type fakeDB struct {
	ExecFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowFn func(ctx context.Context, query string, args ...any) RowScanner
	lastQuery  string
	lastArgs   []any
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return fakeResult{}, nil
}

func (f *fakeDB) QueryRowContext(ctx context.Context, query string, args ...any) RowScanner {
	f.lastQuery = query
	f.lastArgs = args
	return f.QueryRowFn(ctx, query, args...)
}

func TestPreferenceStore_Get_Found(t *testing.T) {
	db := &fakeDB{
		QueryRowFn: func(ctx context.Context, query string, args ...any) RowScanner {
			return fakeRow{value: "dark"}
		},
	}
	store := NewPreferenceStore(db)

	v, found, err := store.Get(context.Background(), "c1", "color-theme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || v != "dark" {
		t.Fatalf("expected dark, got %q found=%v", v, found)
	}
	if !strings.Contains(db.lastQuery, "FROM preferences") {
		t.Errorf("unexpected query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 2 || db.lastArgs[0] != "c1" || db.lastArgs[1] != "color-theme" {
		t.Errorf("unexpected args: %v", db.lastArgs)
	}
}

func TestPreferenceStore_Get_NotFound(t *testing.T) {
	db := &fakeDB{
		QueryRowFn: func(ctx context.Context, query string, args ...any) RowScanner {
			return fakeRow{err: sql.ErrNoRows}
		},
	}
	store := NewPreferenceStore(db)

	_, found, err := store.Get(context.Background(), "c1", "color-theme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected found=false")
	}
}

func TestPreferenceStore_Get_Error(t *testing.T) {
	boom := errors.New("connection refused")
	db := &fakeDB{
		QueryRowFn: func(ctx context.Context, query string, args ...any) RowScanner {
			return fakeRow{err: boom}
		},
	}
	store := NewPreferenceStore(db)

	_, _, err := store.Get(context.Background(), "c1", "color-theme")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestPreferenceStore_Put(t *testing.T) {
	db := &fakeDB{}
	store := NewPreferenceStore(db)

	if err := store.Put(context.Background(), "c1", "color-theme", "light"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.lastQuery, "ON CONFLICT (client_id, key)") {
		t.Errorf("expected upsert, got: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 3 || db.lastArgs[2] != "light" {
		t.Errorf("unexpected args: %v", db.lastArgs)
	}
}

func TestPreferenceStore_Put_Error(t *testing.T) {
	boom := errors.New("read only transaction")
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, boom
		},
	}
	store := NewPreferenceStore(db)

	if err := store.Put(context.Background(), "c1", "color-theme", "dark"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
