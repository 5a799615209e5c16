//go:build integration
// +build integration

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleskard/sqlward/internal/advisor"
	"github.com/aleskard/sqlward/internal/analyzer"
	"github.com/aleskard/sqlward/internal/audit"
	"github.com/aleskard/sqlward/internal/policy"
)

/*
End-to-end tests that run the full pipeline against realistic migration
sets on disk, the way a CI hook would.

To run: go test -tags=integration ./test
*/

func writeMigrations(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, sql := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(sql), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestFullMigrationWorkflow(t *testing.T) {
	dir := writeMigrations(t, map[string]string{
		"001_create_accounts.sql": `
CREATE TABLE accounts (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL,
    balance NUMERIC(12,2) DEFAULT 0
);
ALTER TABLE accounts ENABLE ROW LEVEL SECURITY;
CREATE POLICY accounts_owner ON accounts USING (user_id = auth.uid());
-- DOWN
DROP TABLE accounts;
`,
		"002_create_transactions.sql": `
CREATE TABLE transactions (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL,
    amount NUMERIC(12,2),
    created_at TIMESTAMPTZ DEFAULT now()
);
`,
		"003_index_transactions.sql": `
CREATE INDEX CONCURRENTLY idx_transactions_user_id ON transactions(user_id);
`,
	})

	// Each migration file classifies individually, like a pre-commit hook would.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			t.Fatal(err)
		}
		verdict := analyzer.Classify(analyzer.Input{SQL: string(raw), EstimatedRows: 50_000})
		if !verdict.Additive {
			t.Errorf("%s: expected additive migration, got blocking issues %v",
				entry.Name(), verdict.BlockingIssues)
		}
	}

	// The directory as a whole audits against the default policy.
	report, err := audit.AuditDir(dir, policy.Default())
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if report.FilesScanned != 3 {
		t.Errorf("FilesScanned = %d, want 3", report.FilesScanned)
	}
	if report.Compliant() {
		t.Error("transactions has no RLS, audit should not be compliant")
	}
	if len(report.MissingRLS) != 1 || report.MissingRLS[0] != "transactions" {
		t.Errorf("MissingRLS = %v, want [transactions]", report.MissingRLS)
	}
}

func TestDangerousMigrationBlocked(t *testing.T) {
	verdict := analyzer.Classify(analyzer.Input{
		SQL: "DROP TABLE accounts; TRUNCATE transactions;",
	})
	if verdict.Additive {
		t.Fatal("drop + truncate must not be additive")
	}
	if len(verdict.BlockingIssues) != 2 {
		t.Errorf("BlockingIssues = %v, want 2 findings", verdict.BlockingIssues)
	}
}

func TestQueryAdviceMatchesAuditFindings(t *testing.T) {
	// A query against the unsecured table from the workflow above still
	// gets index advice; the advisor is independent of the audit.
	advice := advisor.Advise(
		"SELECT * FROM transactions WHERE user_id = $1 ORDER BY created_at DESC",
		"transactions")
	if advice.Optimized() {
		t.Fatal("expected recommendations for SELECT * with user lookup")
	}

	var foundIndex bool
	for _, rec := range advice.Recommendations {
		if rec.Suggestion == "CREATE INDEX CONCURRENTLY idx_transactions_user_id ON transactions(user_id);" {
			foundIndex = true
		}
	}
	if !foundIndex {
		t.Errorf("missing user_id index suggestion in %v", advice.Recommendations)
	}
}
