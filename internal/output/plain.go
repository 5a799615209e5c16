package output

import (
	"fmt"
	"io"

	"github.com/aleskard/sqlward/internal/advisor"
	"github.com/aleskard/sqlward/internal/analyzer"
	"github.com/aleskard/sqlward/internal/audit"
	"github.com/aleskard/sqlward/internal/rules"
)

// PlainRenderer produces unformatted text output safe for piping.
type PlainRenderer struct {
	w io.Writer
}

func (r *PlainRenderer) RenderVerdict(v *analyzer.Verdict) {
	fmt.Fprintf(r.w, "=== sqlward — Migration Analysis ===\n\n")
	fmt.Fprintf(r.w, "Statements:    %d\n", v.Statements)
	fmt.Fprintf(r.w, "Additive:      %v\n", v.Additive)
	fmt.Fprintf(r.w, "Est. runtime:  %s\n", v.Runtime.Human())
	fmt.Fprintln(r.w)

	if len(v.BlockingIssues) > 0 {
		fmt.Fprintf(r.w, "--- Blocking issues ---\n")
		for _, issue := range v.BlockingIssues {
			fmt.Fprintf(r.w, "  [%s] %s\n", rules.Blocking, issue)
		}
		fmt.Fprintln(r.w)
	}

	if len(v.Warnings) > 0 {
		fmt.Fprintf(r.w, "--- Warnings ---\n")
		for _, warning := range v.Warnings {
			fmt.Fprintf(r.w, "  [%s] %s\n", rules.Warning, warning)
		}
		fmt.Fprintln(r.w)
	}

	switch {
	case v.Additive && len(v.Warnings) == 0:
		fmt.Fprintln(r.w, "MIGRATION VALIDATION PASSED")
	case v.Additive:
		fmt.Fprintln(r.w, "MIGRATION APPROVED WITH WARNINGS")
	default:
		fmt.Fprintln(r.w, "MIGRATION BLOCKED")
	}
}

func (r *PlainRenderer) RenderAudit(rep *audit.Report) {
	fmt.Fprintf(r.w, "=== sqlward — RLS Compliance Audit ===\n\n")
	fmt.Fprintf(r.w, "Files scanned:   %d\n", rep.FilesScanned)
	fmt.Fprintf(r.w, "Tables created:  %d\n", len(rep.TablesCreated))
	fmt.Fprintf(r.w, "RLS enabled:     %d\n", len(rep.TablesSecured))
	fmt.Fprintln(r.w)

	if len(rep.TablesSecured) > 0 {
		fmt.Fprintf(r.w, "--- Tables with RLS ---\n")
		for _, t := range rep.TablesSecured {
			fmt.Fprintf(r.w, "  * %s\n", t)
		}
		fmt.Fprintln(r.w)
	}

	if len(rep.ExemptTables) > 0 {
		fmt.Fprintf(r.w, "--- Exempt (global lookup) ---\n")
		for _, t := range rep.ExemptTables {
			fmt.Fprintf(r.w, "  ~ %s\n", t)
		}
		fmt.Fprintln(r.w)
	}

	if rep.Compliant() {
		fmt.Fprintln(r.w, "ALL REQUIRED TABLES HAVE RLS ENABLED")
	} else {
		fmt.Fprintf(r.w, "--- Tables missing RLS ---\n")
		for _, t := range rep.MissingRLS {
			fmt.Fprintf(r.w, "  * %s\n", t)
		}
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, "ACTION REQUIRED: add RLS policies to the tables above")
	}
}

func (r *PlainRenderer) RenderAdvice(a *advisor.Advice) {
	fmt.Fprintf(r.w, "=== sqlward — Query Analysis ===\n\n")
	fmt.Fprintf(r.w, "Query:  %s\n", truncate(a.Query, 70))
	fmt.Fprintf(r.w, "Table:  %s\n", a.Table)
	fmt.Fprintln(r.w)

	if a.Optimized() {
		fmt.Fprintln(r.w, "QUERY LOOKS OPTIMIZED")
		return
	}

	for i, rec := range a.Recommendations {
		fmt.Fprintf(r.w, "%d. Issue: %s\n", i+1, rec.Issue)
		if rec.Suggestion != "" {
			fmt.Fprintf(r.w, "   Fix:   %s\n", rec.Suggestion)
		}
		fmt.Fprintln(r.w)
	}
}
