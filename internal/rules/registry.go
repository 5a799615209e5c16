// Package rules holds the static pattern registry: the markers sqlward
// searches for in migration and query text. All tables are built once at
// init and never mutated; matching is done against text that has already
// been uppercased, so every marker and pattern here is written in uppercase.
package rules

import "regexp"

// Severity ranks a finding.
type Severity int

const (
	Info Severity = iota
	Warning
	Blocking
)

func (s Severity) String() string {
	switch s {
	case Blocking:
		return "BLOCKING"
	case Warning:
		return "WARNING"
	default:
		return "INFO"
	}
}

// DangerousOp is a destructive operation that blocks a migration.
type DangerousOp struct {
	Name        string // stable rule identifier
	Marker      string // uppercase substring searched in normalized SQL
	Description string // human-readable finding
}

// DangerousOps is evaluated in order. Every marker present in a migration is
// reported; there is no short-circuit after the first match.
var DangerousOps = []DangerousOp{
	{"drop-table", "DROP TABLE", "Table deletion - requires full backup"},
	{"drop-column", "DROP COLUMN", "Column deletion - use soft deprecation instead"},
	{"alter-column-type", "ALTER COLUMN TYPE", "Column type change - requires table rewrite"},
	{"truncate", "TRUNCATE", "Data truncation - irreversible"},
	{"rename-column", "RENAME COLUMN", "Column rename - breaks application code"},
	{"rename-table", "RENAME TABLE", "Table rename - breaks application code"},
}

// SafeOp is an additive operation that carries no blocking risk.
type SafeOp struct {
	Name   string
	Marker string
}

// SafeOps lists the additive markers. They are informational: a migration is
// additive because it contains no dangerous marker, not because it matches
// this list.
var SafeOps = []SafeOp{
	{"add-column", "ADD COLUMN"},
	{"create-table", "CREATE TABLE"},
	{"create-index-concurrently", "CREATE INDEX CONCURRENTLY"},
	{"add-constraint", "ADD CONSTRAINT"},
}

// Markers used by the secondary (non-blocking) migration checks and the
// runtime estimator.
const (
	MarkerCreateTable   = "CREATE TABLE"
	MarkerAddColumn     = "ADD COLUMN"
	MarkerDefault       = "DEFAULT"
	MarkerCreateIndex   = "CREATE INDEX"
	MarkerConcurrently  = "CONCURRENTLY"
	MarkerEnableRLS     = "ENABLE ROW LEVEL SECURITY"
	MarkerCreatePolicy  = "CREATE POLICY"
	MarkerRollback      = "ROLLBACK"
	MarkerDownMigration = "-- DOWN"
)

// QueryShape is a recognizable query access pattern with an index template.
// Templates carry {table}, {date_col} and {fk} placeholders; {date_col} and
// {fk} are filled with generic placeholders because the column cannot be
// resolved from text alone.
type QueryShape struct {
	Name          string
	Pattern       *regexp.Regexp
	Description   string
	IndexTemplate string
}

// QueryShapes is evaluated in order by the advisor. Shapes are independent:
// one query can match several, and overlapping suggestions (date_range and
// order_by_date produce the same index) are reported as-is.
var QueryShapes = []QueryShape{
	{
		Name:          "user_lookup",
		Pattern:       regexp.MustCompile(`WHERE\s+USER_ID\s*=`),
		Description:   "User-based lookup",
		IndexTemplate: "CREATE INDEX CONCURRENTLY idx_{table}_user_id ON {table}(user_id);",
	},
	{
		Name:          "date_range",
		Pattern:       regexp.MustCompile(`WHERE.*(?:CREATED_AT|UPDATED_AT|TRANSACTION_DATE)\s*(?:>|<|BETWEEN)`),
		Description:   "Date range query",
		IndexTemplate: "CREATE INDEX CONCURRENTLY idx_{table}_date ON {table}({date_col} DESC);",
	},
	{
		Name:          "order_by_date",
		Pattern:       regexp.MustCompile(`ORDER BY\s+(?:CREATED_AT|UPDATED_AT|TRANSACTION_DATE)`),
		Description:   "Ordered by date",
		IndexTemplate: "CREATE INDEX CONCURRENTLY idx_{table}_date ON {table}({date_col} DESC);",
	},
	{
		Name:          "foreign_key",
		Pattern:       regexp.MustCompile(`WHERE\s+\w+_ID\s*=`),
		Description:   "Foreign key lookup",
		IndexTemplate: "CREATE INDEX CONCURRENTLY idx_{table}_{fk} ON {table}({fk});",
	},
}
