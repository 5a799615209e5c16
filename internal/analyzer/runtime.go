package analyzer

import (
	"github.com/aleskard/sqlward/internal/parser"
	"github.com/aleskard/sqlward/internal/rules"
)

// Bucket is a coarse runtime estimate for a migration.
type Bucket string

const (
	SubSecond    Bucket = "SUB_SECOND"
	ShortSeconds Bucket = "SHORT_SECONDS"
	LongMinutes  Bucket = "LONG_MINUTES"
	Unknown      Bucket = "UNKNOWN"
)

// Human returns the boundary-friendly label for a bucket.
func (b Bucket) Human() string {
	switch b {
	case SubSecond:
		return "<1 second"
	case ShortSeconds:
		return "seconds (1-30s)"
	case LongMinutes:
		return "minutes (1-5m)"
	default:
		return "unknown - requires testing"
	}
}

// indexRowThreshold is the row count above which an index build moves from
// the seconds bucket into the minutes bucket.
const indexRowThreshold = 100_000

// EstimateRuntime buckets a migration's expected duration. The checks form
// a priority ladder, first match wins: CREATE TABLE dominates everything
// because the table is empty, ADD COLUMN is instant unless a DEFAULT forces
// a rewrite pass, and index builds scale with the row estimate.
func EstimateRuntime(sql string, estimatedRows int64) Bucket {
	return estimateNormalized(parser.Normalize(sql), estimatedRows)
}

func estimateNormalized(normalized string, estimatedRows int64) Bucket {
	switch {
	case parser.HasMarker(normalized, rules.MarkerCreateTable):
		return SubSecond
	case parser.HasMarker(normalized, rules.MarkerAddColumn):
		if parser.HasMarker(normalized, rules.MarkerDefault) {
			return ShortSeconds
		}
		return SubSecond
	case parser.HasMarker(normalized, rules.MarkerCreateIndex):
		if estimatedRows < indexRowThreshold {
			return ShortSeconds
		}
		return LongMinutes
	default:
		return Unknown
	}
}
