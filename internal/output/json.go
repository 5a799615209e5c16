package output

import (
	"encoding/json"
	"io"

	"github.com/aleskard/sqlward/internal/advisor"
	"github.com/aleskard/sqlward/internal/analyzer"
	"github.com/aleskard/sqlward/internal/audit"
)

// JSONRenderer produces machine-readable JSON output.
type JSONRenderer struct {
	w io.Writer
}

type jsonVerdict struct {
	Statement        string   `json:"statement"`
	Statements       int      `json:"statement_count"`
	Additive         bool     `json:"additive"`
	BlockingIssues   []string `json:"blocking_issues,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
	SafeOperations   []string `json:"safe_operations,omitempty"`
	EstimatedRuntime string   `json:"estimated_runtime"`
	RuntimeHuman     string   `json:"estimated_runtime_human"`
}

type jsonAudit struct {
	FilesScanned   int      `json:"files_scanned"`
	TablesCreated  []string `json:"tables_created"`
	TablesSecured  []string `json:"tables_with_rls"`
	RequiredTables []string `json:"required_tables"`
	ExemptTables   []string `json:"exempt_tables"`
	MissingRLS     []string `json:"missing_rls"`
	Compliant      bool     `json:"compliant"`
}

type jsonRecommendation struct {
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion,omitempty"`
}

type jsonAdvice struct {
	Query           string               `json:"query"`
	Table           string               `json:"table"`
	Recommendations []jsonRecommendation `json:"recommendations"`
	Optimized       bool                 `json:"optimized"`
}

func (r *JSONRenderer) RenderVerdict(v *analyzer.Verdict) {
	r.encode(jsonVerdict{
		Statement:        v.Statement,
		Statements:       v.Statements,
		Additive:         v.Additive,
		BlockingIssues:   v.BlockingIssues,
		Warnings:         v.Warnings,
		SafeOperations:   v.SafeOperations,
		EstimatedRuntime: string(v.Runtime),
		RuntimeHuman:     v.Runtime.Human(),
	})
}

func (r *JSONRenderer) RenderAudit(rep *audit.Report) {
	r.encode(jsonAudit{
		FilesScanned:   rep.FilesScanned,
		TablesCreated:  rep.TablesCreated,
		TablesSecured:  rep.TablesSecured,
		RequiredTables: rep.RequiredTables,
		ExemptTables:   rep.ExemptTables,
		MissingRLS:     rep.MissingRLS,
		Compliant:      rep.Compliant(),
	})
}

func (r *JSONRenderer) RenderAdvice(a *advisor.Advice) {
	recs := make([]jsonRecommendation, 0, len(a.Recommendations))
	for _, rec := range a.Recommendations {
		recs = append(recs, jsonRecommendation{Issue: rec.Issue, Suggestion: rec.Suggestion})
	}
	r.encode(jsonAdvice{
		Query:           a.Query,
		Table:           a.Table,
		Recommendations: recs,
		Optimized:       a.Optimized(),
	})
}

func (r *JSONRenderer) encode(v any) {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
