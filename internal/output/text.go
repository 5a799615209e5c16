package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/aleskard/sqlward/internal/advisor"
	"github.com/aleskard/sqlward/internal/analyzer"
	"github.com/aleskard/sqlward/internal/audit"
)

// TextRenderer produces Lip Gloss styled terminal output.
type TextRenderer struct {
	w io.Writer
}

const boxWidth = 60

func (r *TextRenderer) RenderVerdict(v *analyzer.Verdict) {
	fmt.Fprintln(r.w)

	header := TitleStyle.Render("sqlward — Migration Analysis")
	metaLines := []string{
		r.labelValue("Statements:", fmt.Sprintf("%d", v.Statements)),
		r.labelValue("Additive:", r.colorAdditive(v.Additive)),
		r.labelValue("Est. runtime:", v.Runtime.Human()),
	}
	if len(v.SafeOperations) > 0 {
		metaLines = append(metaLines, r.labelValue("Operations:", strings.Join(v.SafeOperations, ", ")))
	}
	fmt.Fprintln(r.w, BoxStyle.Width(boxWidth).Render(header+"\n"+strings.Join(metaLines, "\n")))

	if len(v.BlockingIssues) > 0 {
		var lines []string
		for _, issue := range v.BlockingIssues {
			lines = append(lines, IconDanger+" "+issue)
		}
		box := DangerBoxStyle.Width(boxWidth).Render(
			DangerText.Render("Blocking issues") + "\n" + strings.Join(lines, "\n"),
		)
		fmt.Fprintln(r.w, box)
	}

	for _, warning := range v.Warnings {
		box := WarningBoxStyle.Width(boxWidth).Render(
			WarningText.Render(IconWarning+" Warning") + "\n" + warning,
		)
		fmt.Fprintln(r.w, box)
	}

	if v.Additive && len(v.Warnings) == 0 {
		fmt.Fprintln(r.w, SafeBoxStyle.Width(boxWidth).Render(
			SafeText.Render(IconSafe+" Migration validation passed")))
	} else if v.Additive {
		fmt.Fprintln(r.w, WarningBoxStyle.Width(boxWidth).Render(
			WarningText.Render(IconWarning+" Approved with warnings — review before execution")))
	} else {
		fmt.Fprintln(r.w, DangerBoxStyle.Width(boxWidth).Render(
			DangerText.Render(IconDanger+" Migration blocked — fix issues before execution")))
	}

	fmt.Fprintln(r.w)
}

func (r *TextRenderer) RenderAudit(rep *audit.Report) {
	fmt.Fprintln(r.w)

	header := TitleStyle.Render("sqlward — RLS Compliance Audit")
	metaLines := []string{
		r.labelValue("Files scanned:", fmt.Sprintf("%d", rep.FilesScanned)),
		r.labelValue("Tables created:", fmt.Sprintf("%d", len(rep.TablesCreated))),
		r.labelValue("RLS enabled:", fmt.Sprintf("%d", len(rep.TablesSecured))),
		r.labelValue("Required:", fmt.Sprintf("%d", len(rep.RequiredTables))),
	}
	fmt.Fprintln(r.w, BoxStyle.Width(boxWidth).Render(header+"\n"+strings.Join(metaLines, "\n")))

	if len(rep.TablesSecured) > 0 {
		var lines []string
		for _, t := range rep.TablesSecured {
			lines = append(lines, "• "+t)
		}
		fmt.Fprintln(r.w, SafeBoxStyle.Width(boxWidth).Render(
			SafeText.Render("Tables with RLS")+"\n"+strings.Join(lines, "\n")))
	}

	if len(rep.ExemptTables) > 0 {
		var lines []string
		for _, t := range rep.ExemptTables {
			lines = append(lines, "~ "+t+" (global lookup)")
		}
		fmt.Fprintln(r.w, MutedText.Render(strings.Join(lines, "\n")))
	}

	if rep.Compliant() {
		fmt.Fprintln(r.w, SafeBoxStyle.Width(boxWidth).Render(
			SafeText.Render(IconSafe+" All required tables have RLS enabled")))
	} else {
		var lines []string
		for _, t := range rep.MissingRLS {
			lines = append(lines, IconDanger+" "+t)
		}
		fmt.Fprintln(r.w, DangerBoxStyle.Width(boxWidth).Render(
			DangerText.Render("Tables missing RLS")+"\n"+strings.Join(lines, "\n")+"\n"+
				DangerText.Render("Action required: add RLS policies to the tables above")))
	}

	fmt.Fprintln(r.w)
}

func (r *TextRenderer) RenderAdvice(a *advisor.Advice) {
	fmt.Fprintln(r.w)

	header := TitleStyle.Render("sqlward — Query Analysis")
	metaLines := []string{
		r.labelValue("Query:", CodeStyle.Render(truncate(a.Query, 48))),
		r.labelValue("Table:", a.Table),
	}
	fmt.Fprintln(r.w, BoxStyle.Width(boxWidth).Render(header+"\n"+strings.Join(metaLines, "\n")))

	if a.Optimized() {
		fmt.Fprintln(r.w, SafeBoxStyle.Width(boxWidth).Render(
			SafeText.Render(IconSafe+" Query looks optimized")))
		fmt.Fprintln(r.w)
		return
	}

	for i, rec := range a.Recommendations {
		lines := []string{fmt.Sprintf("%d. %s", i+1, rec.Issue)}
		if rec.Suggestion != "" {
			lines = append(lines, MutedText.Render("Fix: ")+CodeStyle.Render(rec.Suggestion))
		}
		fmt.Fprintln(r.w, WarningBoxStyle.Width(boxWidth).Render(strings.Join(lines, "\n")))
	}

	fmt.Fprintln(r.w)
}

func (r *TextRenderer) labelValue(label, value string) string {
	return LabelStyle.Render(label) + value
}

func (r *TextRenderer) colorAdditive(additive bool) string {
	if additive {
		return SafeText.Render("YES")
	}
	return DangerText.Render("NO — requires review")
}

func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
