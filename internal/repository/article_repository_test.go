package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"prajnayana/internal/database"

	"github.com/google/uuid"
)

// recordingDB captures the last query and args so tests can assert the SQL a
// repository builds without a live database.
type recordingDB struct {
	query string
	args  []any
}

func (d *recordingDB) Ping(context.Context) error { return nil }
func (d *recordingDB) Close() error               { return nil }
func (d *recordingDB) SQLDB() *sql.DB             { return nil }

func (d *recordingDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("recordingDB: Begin unsupported")
}

func (d *recordingDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	d.query, d.args = query, args
	return 1, nil
}

func (d *recordingDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	d.query, d.args = query, args
	return emptyRows{}, nil
}

func (d *recordingDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	d.query, d.args = query, args
	return emptyRows{}
}

type emptyRows struct{}

func (emptyRows) Close()            {}
func (emptyRows) Next() bool        { return false }
func (emptyRows) Scan(...any) error { return errors.New("no rows") }
func (emptyRows) Err() error        { return nil }

func TestArticleList_NoFilters(t *testing.T) {
	db := &recordingDB{}
	repo := NewPostgresArticleRepository(db)

	if _, err := repo.List(context.Background(), nil, ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.Contains(db.query, "WHERE") {
		t.Fatalf("expected no WHERE clause, got %q", db.query)
	}
	if !strings.Contains(db.query, "ORDER BY created_at DESC") {
		t.Fatalf("expected newest-first ordering, got %q", db.query)
	}
	if len(db.args) != 0 {
		t.Fatalf("expected no args, got %v", db.args)
	}
}

func TestArticleList_HubFilter(t *testing.T) {
	db := &recordingDB{}
	repo := NewPostgresArticleRepository(db)
	hubID := uuid.New()

	if _, err := repo.List(context.Background(), &hubID, ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(db.query, "hub_id = $1") {
		t.Fatalf("expected hub filter, got %q", db.query)
	}
	if len(db.args) != 1 || db.args[0] != hubID {
		t.Fatalf("expected hub id arg, got %v", db.args)
	}
}

func TestArticleList_SearchCoversAllTextColumns(t *testing.T) {
	db := &recordingDB{}
	repo := NewPostgresArticleRepository(db)

	if _, err := repo.List(context.Background(), nil, "focus"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, col := range []string{"title", "summary", "content", "tags"} {
		if !strings.Contains(db.query, col+" ILIKE $1") {
			t.Fatalf("expected %s ILIKE in search, got %q", col, db.query)
		}
	}
	if len(db.args) != 1 || db.args[0] != "%focus%" {
		t.Fatalf("expected wildcarded search arg, got %v", db.args)
	}
}

func TestArticleList_HubFilterAndSearch(t *testing.T) {
	db := &recordingDB{}
	repo := NewPostgresArticleRepository(db)
	hubID := uuid.New()

	if _, err := repo.List(context.Background(), &hubID, "stoic"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(db.query, "hub_id = $1 AND (title ILIKE $2") {
		t.Fatalf("expected combined filters, got %q", db.query)
	}
	if len(db.args) != 2 || db.args[0] != hubID || db.args[1] != "%stoic%" {
		t.Fatalf("unexpected args: %v", db.args)
	}
}
