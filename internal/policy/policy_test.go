package policy

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()

	if len(p.Required) == 0 {
		t.Fatal("default policy has no required tables")
	}
	for _, table := range []string{"profiles", "accounts", "transactions"} {
		if !p.RequiredSet()[table] {
			t.Errorf("default required set is missing %q", table)
		}
	}
	if !p.ExemptSet()["merchant_database"] {
		t.Error("default exempt set is missing merchant_database")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := `required:
  - Orders
  - " customers "
exempt:
  - COUNTRY_CODES
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing policy: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Names are trimmed and lowercased on load.
	if !reflect.DeepEqual(p.Required, []string{"orders", "customers"}) {
		t.Errorf("Required = %v, want [orders customers]", p.Required)
	}
	if !reflect.DeepEqual(p.Exempt, []string{"country_codes"}) {
		t.Errorf("Exempt = %v, want [country_codes]", p.Exempt)
	}
}

func TestLoad_ReplacesDefaultsEntirely(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("required: [orders]\n"), 0644); err != nil {
		t.Fatalf("writing policy: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RequiredSet()["accounts"] {
		t.Error("loaded policy must not merge with defaults")
	}
	if len(p.Exempt) != 0 {
		t.Errorf("Exempt = %v, want empty", p.Exempt)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("required: [unclosed"), 0644); err != nil {
		t.Fatalf("writing policy: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for malformed yaml, got nil")
	}
}

func TestSetsIgnoreEmptyNames(t *testing.T) {
	p := Policy{Required: []string{"", "orders"}}
	set := p.RequiredSet()
	if set[""] {
		t.Error("empty table names must not enter the set")
	}
	if !set["orders"] {
		t.Error("orders missing from set")
	}
}
