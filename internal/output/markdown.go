package output

import (
	"fmt"
	"io"

	"github.com/aleskard/sqlward/internal/advisor"
	"github.com/aleskard/sqlward/internal/analyzer"
	"github.com/aleskard/sqlward/internal/audit"
)

// MarkdownRenderer produces markdown output for documentation/tickets.
type MarkdownRenderer struct {
	w io.Writer
}

func (r *MarkdownRenderer) RenderVerdict(v *analyzer.Verdict) {
	fmt.Fprintf(r.w, "# sqlward — Migration Analysis\n\n")
	fmt.Fprintf(r.w, "**Statement:** `%s`\n\n", truncate(v.Statement, 120))

	fmt.Fprintf(r.w, "| Property | Value |\n|---|---|\n")
	fmt.Fprintf(r.w, "| Statements | %d |\n", v.Statements)
	fmt.Fprintf(r.w, "| Additive | %v |\n", v.Additive)
	fmt.Fprintf(r.w, "| Estimated runtime | %s |\n\n", v.Runtime.Human())

	if len(v.BlockingIssues) > 0 {
		fmt.Fprintf(r.w, "## Blocking issues\n\n")
		for _, issue := range v.BlockingIssues {
			fmt.Fprintf(r.w, "- 🚨 %s\n", issue)
		}
		fmt.Fprintln(r.w)
	}

	if len(v.Warnings) > 0 {
		fmt.Fprintf(r.w, "## Warnings\n\n")
		for _, warning := range v.Warnings {
			fmt.Fprintf(r.w, "- ⚠️ %s\n", warning)
		}
		fmt.Fprintln(r.w)
	}

	fmt.Fprintf(r.w, "## Result\n\n")
	switch {
	case v.Additive && len(v.Warnings) == 0:
		fmt.Fprintf(r.w, "✅ **Migration validation passed**\n")
	case v.Additive:
		fmt.Fprintf(r.w, "⚠️ **Approved with warnings** — review before execution\n")
	default:
		fmt.Fprintf(r.w, "❌ **Migration blocked** — fix issues before execution\n")
	}
}

func (r *MarkdownRenderer) RenderAudit(rep *audit.Report) {
	fmt.Fprintf(r.w, "# sqlward — RLS Compliance Audit\n\n")

	fmt.Fprintf(r.w, "| Property | Value |\n|---|---|\n")
	fmt.Fprintf(r.w, "| Files scanned | %d |\n", rep.FilesScanned)
	fmt.Fprintf(r.w, "| Tables created | %d |\n", len(rep.TablesCreated))
	fmt.Fprintf(r.w, "| Tables with RLS | %d |\n", len(rep.TablesSecured))
	fmt.Fprintf(r.w, "| Required tables | %d |\n\n", len(rep.RequiredTables))

	if len(rep.TablesSecured) > 0 {
		fmt.Fprintf(r.w, "## Tables with RLS\n\n")
		for _, t := range rep.TablesSecured {
			fmt.Fprintf(r.w, "- %s\n", t)
		}
		fmt.Fprintln(r.w)
	}

	if len(rep.ExemptTables) > 0 {
		fmt.Fprintf(r.w, "## Exempt tables\n\n")
		for _, t := range rep.ExemptTables {
			fmt.Fprintf(r.w, "- %s (global lookup)\n", t)
		}
		fmt.Fprintln(r.w)
	}

	fmt.Fprintf(r.w, "## Result\n\n")
	if rep.Compliant() {
		fmt.Fprintf(r.w, "✅ **All required tables have RLS enabled**\n")
	} else {
		fmt.Fprintf(r.w, "❌ **Tables missing RLS:**\n\n")
		for _, t := range rep.MissingRLS {
			fmt.Fprintf(r.w, "- %s\n", t)
		}
	}
}

func (r *MarkdownRenderer) RenderAdvice(a *advisor.Advice) {
	fmt.Fprintf(r.w, "# sqlward — Query Analysis\n\n")
	fmt.Fprintf(r.w, "```sql\n%s\n```\n\n", a.Query)
	fmt.Fprintf(r.w, "**Table:** `%s`\n\n", a.Table)

	if a.Optimized() {
		fmt.Fprintf(r.w, "✅ **Query looks optimized**\n")
		return
	}

	fmt.Fprintf(r.w, "## Recommendations\n\n")
	for i, rec := range a.Recommendations {
		fmt.Fprintf(r.w, "%d. **%s**\n", i+1, rec.Issue)
		if rec.Suggestion != "" {
			fmt.Fprintf(r.w, "   - Fix: `%s`\n", rec.Suggestion)
		}
	}
}
