// Package advisor inspects query text for access patterns that want an
// index and for shapes that waste work. Recommendations are additive and
// keep registry order; overlapping shapes each report their own suggestion.
package advisor

import (
	"strings"

	"github.com/aleskard/sqlward/internal/parser"
	"github.com/aleskard/sqlward/internal/rules"
)

// DefaultTable substitutes for {table} when the caller cannot name the
// target table.
const DefaultTable = "TABLE"

// Generic placeholders for column references that cannot be resolved from
// query text alone.
const (
	placeholderDateColumn = "created_at"
	placeholderFKColumn   = "column_id"
)

// Recommendation pairs an observed issue with a concrete fix. Suggestion is
// empty for issues that have no index answer.
type Recommendation struct {
	Issue      string
	Suggestion string
}

// Advice is the full advisory output for one query.
type Advice struct {
	Query           string
	Table           string
	Recommendations []Recommendation
}

// Optimized reports whether the query triggered no recommendations.
func (a *Advice) Optimized() bool {
	return len(a.Recommendations) == 0
}

// Advise evaluates the query against the shape registry. table may be empty;
// it defaults to DefaultTable in suggestions.
func Advise(query, table string) *Advice {
	if table == "" {
		table = DefaultTable
	}
	normalized := parser.Normalize(query)

	advice := &Advice{Query: query, Table: table}

	if parser.HasMarker(normalized, "SELECT *") {
		advice.Recommendations = append(advice.Recommendations, Recommendation{
			Issue:      "SELECT * fetches all columns",
			Suggestion: "Select only needed columns for better performance",
		})
	}

	if !parser.HasMarker(normalized, "WHERE") && !parser.HasMarker(normalized, "LIMIT") {
		advice.Recommendations = append(advice.Recommendations, Recommendation{
			Issue:      "No WHERE clause",
			Suggestion: "Add WHERE clause or LIMIT to avoid full table scan",
		})
	}

	for _, shape := range rules.QueryShapes {
		if shape.Pattern.MatchString(normalized) {
			advice.Recommendations = append(advice.Recommendations, Recommendation{
				Issue:      shape.Description + " detected",
				Suggestion: expandTemplate(shape.IndexTemplate, table),
			})
		}
	}

	return advice
}

func expandTemplate(tpl, table string) string {
	r := strings.NewReplacer(
		"{table}", table,
		"{date_col}", placeholderDateColumn,
		"{fk}", placeholderFKColumn,
	)
	return r.Replace(tpl)
}
