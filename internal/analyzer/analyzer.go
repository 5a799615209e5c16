// Package analyzer classifies a schema migration before it runs: blocking
// risks, non-blocking warnings, whether the change is additive, and a coarse
// runtime estimate. Classification is a pure function over the migration
// text and an optional row estimate: same input, same verdict, always.
package analyzer

import (
	"github.com/aleskard/sqlward/internal/parser"
	"github.com/aleskard/sqlward/internal/rules"
)

// Input holds everything the classifier needs.
type Input struct {
	SQL string // raw migration text, may contain multiple statements

	// EstimatedRows is the caller's estimate of the largest affected
	// table. Zero means unknown and keeps index builds in the short bucket.
	EstimatedRows int64
}

// Verdict is the classification result. It is created fresh per call and
// never mutated afterwards.
type Verdict struct {
	Statement  string // original text, casing preserved
	Statements int    // statement count, for reporting only

	// Additive is true when no dangerous operation was detected. Warnings
	// do not affect it.
	Additive bool

	// BlockingIssues holds one entry per dangerous marker present, in
	// registry order.
	BlockingIssues []string

	// Warnings holds the non-blocking advisories, in check order.
	Warnings []string

	// SafeOperations lists the additive operations recognized in the text,
	// in registry order. Informational.
	SafeOperations []string

	Runtime Bucket
}

// Warning texts for the secondary checks.
const (
	warnIndexLocks      = "Index creation without CONCURRENTLY - will lock table"
	warnTableWithoutRLS = "New table without row level security enabled"
	warnNoPolicies      = "New table without row level security policies"
	warnNoRollback      = "No rollback plan documented"
)

// Classify analyzes one migration. It never fails: malformed or non-SQL
// text simply matches no markers.
func Classify(input Input) *Verdict {
	normalized := parser.Normalize(input.SQL)

	v := &Verdict{
		Statement:  input.SQL,
		Statements: len(parser.SplitStatements(input.SQL)),
	}

	for _, op := range rules.DangerousOps {
		if parser.HasMarker(normalized, op.Marker) {
			v.BlockingIssues = append(v.BlockingIssues, op.Description)
		}
	}
	v.Additive = len(v.BlockingIssues) == 0

	for _, op := range rules.SafeOps {
		if parser.HasMarker(normalized, op.Marker) {
			v.SafeOperations = append(v.SafeOperations, op.Name)
		}
	}

	// Secondary checks are independent of the blocking scan.
	if parser.HasMarker(normalized, rules.MarkerCreateIndex) &&
		!parser.HasMarker(normalized, rules.MarkerConcurrently) {
		v.Warnings = append(v.Warnings, warnIndexLocks)
	}
	if parser.HasMarker(normalized, rules.MarkerCreateTable) {
		if !parser.HasMarker(normalized, rules.MarkerEnableRLS) {
			v.Warnings = append(v.Warnings, warnTableWithoutRLS)
		}
		if !parser.HasMarker(normalized, rules.MarkerCreatePolicy) {
			v.Warnings = append(v.Warnings, warnNoPolicies)
		}
	}
	if !parser.HasMarker(normalized, rules.MarkerRollback) &&
		!parser.HasMarker(normalized, rules.MarkerDownMigration) {
		v.Warnings = append(v.Warnings, warnNoRollback)
	}

	v.Runtime = estimateNormalized(normalized, input.EstimatedRows)
	return v
}
