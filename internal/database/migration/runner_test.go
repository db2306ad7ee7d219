package migration

import (
	"testing"
	"testing/fstest"
)

func TestLoadMigrations_OrdersAndChecksums(t *testing.T) {
	fsys := fstest.MapFS{
		"V2__add_indexes.sql": {Data: []byte("CREATE INDEX idx ON t (c);")},
		"V1__init.sql":        {Data: []byte("CREATE TABLE t (c INT);")},
		"README.md":           {Data: []byte("not a migration")},
	}

	migs, err := loadMigrations(fsys)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 {
		t.Fatalf("migrations out of order: %v, %v", migs[0].Version, migs[1].Version)
	}
	if migs[0].Name != "init" {
		t.Fatalf("expected name init, got %q", migs[0].Name)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("checksums missing or not distinct")
	}
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__first.sql":  {Data: []byte("SELECT 1;")},
		"V1__second.sql": {Data: []byte("SELECT 2;")},
	}

	if _, err := loadMigrations(fsys); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}

func TestLoadMigrations_EmptyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__empty.sql": {Data: []byte("   \n")},
	}

	if _, err := loadMigrations(fsys); err == nil {
		t.Fatalf("expected empty migration error")
	}
}
