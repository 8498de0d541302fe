package migrate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateAndValidate(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Counter Table!")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if filepath.Ext(path) != ".sql" {
		t.Fatalf("unexpected extension for %s", path)
	}

	if err := ValidateDir(dir); err != nil {
		t.Fatalf("expected generated migration to validate: %v", err)
	}
}

func TestValidateDirRejectsBadNames(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad-name.sql")
	if err := os.WriteFile(bad, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected validation error for malformed filename")
	}
}

func TestValidateDirRejectsMissingHeaders(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "20250901120000_missing_down.sql")
	if err := os.WriteFile(name, []byte("-- +goose Up\nSELECT 1;\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected validation error for missing Down header")
	}
}

func TestShippedMigrationsValidate(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations must validate: %v", err)
	}
}
