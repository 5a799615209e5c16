package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetSQLInput_FromArgs(t *testing.T) {
	cmd := validateCmd
	args := []string{"SELECT * FROM users"}

	sql, err := getSQLInput(cmd, args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "SELECT * FROM users"
	if sql != expected {
		t.Errorf("getSQLInput() = %q, want %q", sql, expected)
	}
}

func TestGetSQLInput_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	sqlFile := filepath.Join(tmpDir, "test.sql")
	content := "ALTER TABLE users ADD COLUMN email TEXT;\n"

	if err := os.WriteFile(sqlFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	cmd := validateCmd
	cmd.Flags().Set("file", sqlFile)
	defer cmd.Flags().Set("file", "") // reset

	sql, err := getSQLInput(cmd, []string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Trailing whitespace is trimmed; semicolons are kept.
	expected := "ALTER TABLE users ADD COLUMN email TEXT;"
	if sql != expected {
		t.Errorf("getSQLInput() = %q, want %q", sql, expected)
	}
}

func TestGetSQLInput_FileNotFound(t *testing.T) {
	cmd := validateCmd
	cmd.Flags().Set("file", "/nonexistent/file.sql")
	defer cmd.Flags().Set("file", "")

	_, err := getSQLInput(cmd, []string{})
	if err == nil {
		t.Error("expected error for nonexistent file, got nil")
	}
}

func TestGetSQLInput_NoInput(t *testing.T) {
	cmd := validateCmd
	cmd.Flags().Set("file", "")
	defer cmd.Flags().Set("file", "")

	_, err := getSQLInput(cmd, []string{})
	if err == nil {
		t.Error("expected error when no SQL provided, got nil")
	}
}
