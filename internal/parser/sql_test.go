package parser

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	got := Normalize("Select * from Users;")
	want := "SELECT * FROM USERS;"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestHasMarker(t *testing.T) {
	normalized := Normalize("create index concurrently idx on t(col);")
	if !HasMarker(normalized, "CREATE INDEX") {
		t.Error("expected CREATE INDEX marker")
	}
	if !HasMarker(normalized, "CONCURRENTLY") {
		t.Error("expected CONCURRENTLY marker")
	}
	if HasMarker(normalized, "DROP TABLE") {
		t.Error("unexpected DROP TABLE marker")
	}
}

func TestCreatedTables(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{
			name: "simple create",
			sql:  "CREATE TABLE accounts (id UUID PRIMARY KEY);",
			want: []string{"accounts"},
		},
		{
			name: "if not exists",
			sql:  "create table if not exists profiles (id uuid);",
			want: []string{"profiles"},
		},
		{
			name: "schema qualified",
			sql:  "CREATE TABLE public.transactions (id UUID);",
			want: []string{"transactions"},
		},
		{
			name: "quoted identifier",
			sql:  `CREATE TABLE "subscriptions" (id UUID);`,
			want: []string{"subscriptions"},
		},
		{
			name: "multiple statements",
			sql:  "CREATE TABLE a (x int); CREATE TABLE IF NOT EXISTS b (y int);",
			want: []string{"a", "b"},
		},
		{
			name: "no create",
			sql:  "ALTER TABLE accounts ADD COLUMN email TEXT;",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreatedTables(Normalize(tt.sql))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CreatedTables() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSecuredTables(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{
			name: "enable rls",
			sql:  "ALTER TABLE accounts ENABLE ROW LEVEL SECURITY;",
			want: []string{"accounts"},
		},
		{
			name: "lowercase with only",
			sql:  "alter table only profiles enable row level security;",
			want: []string{"profiles"},
		},
		{
			name: "schema qualified",
			sql:  "ALTER TABLE public.transactions ENABLE ROW LEVEL SECURITY;",
			want: []string{"transactions"},
		},
		{
			name: "other alter is not rls",
			sql:  "ALTER TABLE accounts ADD COLUMN email TEXT;",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SecuredTables(Normalize(tt.sql))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SecuredTables() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{
			name: "two statements",
			sql:  "DROP TABLE t; CREATE TABLE t(id UUID);",
			want: []string{"DROP TABLE t", "CREATE TABLE t(id UUID)"},
		},
		{
			name: "semicolon in string literal",
			sql:  "INSERT INTO t VALUES ('a;b'); SELECT 1;",
			want: []string{"INSERT INTO t VALUES ('a;b')", "SELECT 1"},
		},
		{
			name: "escaped quote",
			sql:  "INSERT INTO t VALUES ('it''s; fine');",
			want: []string{"INSERT INTO t VALUES ('it''s; fine')"},
		},
		{
			name: "semicolon in line comment",
			sql:  "SELECT 1 -- trailing; comment\n; SELECT 2;",
			want: []string{"SELECT 1 -- trailing; comment", "SELECT 2"},
		},
		{
			name: "dollar quoted body",
			sql:  "CREATE FUNCTION f() RETURNS void AS $$ BEGIN; END $$ LANGUAGE plpgsql;",
			want: []string{"CREATE FUNCTION f() RETURNS void AS $$ BEGIN; END $$ LANGUAGE plpgsql"},
		},
		{
			name: "no trailing semicolon",
			sql:  "SELECT 1",
			want: []string{"SELECT 1"},
		},
		{
			name: "empty input",
			sql:  "",
			want: nil,
		},
		{
			name: "only whitespace and semicolons",
			sql:  " ;\n ; ",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitStatements(tt.sql)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitStatements() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
