// Package audit reconciles table creation against row level security
// enablement across a set of migration files. Attribution is global: a
// table created in one migration and secured in a later one is compliant,
// so only the union across files matters.
package audit

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/aleskard/sqlward/internal/parser"
	"github.com/aleskard/sqlward/internal/policy"
)

// ErrSourceUnavailable marks a migrations directory or file that could not
// be read. It is never downgraded to an empty report: callers must be able
// to tell "nothing to audit" apart from "could not look".
var ErrSourceUnavailable = errors.New("migrations source unavailable")

// File is one migration: its name and raw SQL text.
type File struct {
	Name string
	SQL  string
}

// Report is the compliance result. All slices are sorted so rendering is
// deterministic regardless of input file order. MissingRLS is derived from
// the other four sets at build time and never edited afterwards.
type Report struct {
	FilesScanned   int
	TablesCreated  []string
	TablesSecured  []string
	RequiredTables []string
	ExemptTables   []string

	// MissingRLS = required ∩ created − secured − exempt
	MissingRLS []string
}

// Compliant reports whether every required table that exists also has RLS.
func (r *Report) Compliant() bool {
	return len(r.MissingRLS) == 0
}

// Audit reconciles the given migration files against the policy. Pure set
// algebra: the result is identical under any reordering of files, and
// duplicate table names are idempotent.
func Audit(files []File, pol policy.Policy) *Report {
	created := make(map[string]bool)
	secured := make(map[string]bool)

	for _, f := range files {
		normalized := parser.Normalize(f.SQL)
		for _, t := range parser.CreatedTables(normalized) {
			created[t] = true
		}
		for _, t := range parser.SecuredTables(normalized) {
			secured[t] = true
		}
	}

	required := pol.RequiredSet()
	exempt := pol.ExemptSet()

	var missing []string
	for t := range required {
		if created[t] && !secured[t] && !exempt[t] {
			missing = append(missing, t)
		}
	}
	sort.Strings(missing)

	return &Report{
		FilesScanned:   len(files),
		TablesCreated:  sortedKeys(created),
		TablesSecured:  sortedKeys(secured),
		RequiredTables: sortedKeys(required),
		ExemptTables:   sortedKeys(exempt),
		MissingRLS:     missing,
	}
}

// AuditDir reads every *.sql file in dir and audits them. A missing or
// unreadable directory (or file) returns an error wrapping
// ErrSourceUnavailable. An existing directory with no migrations is not an
// error: it produces a compliant, empty report.
func AuditDir(dir string, pol policy.Policy) (*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "reading directory %s: %v", dir, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".sql") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(ErrSourceUnavailable, "reading migration %s: %v", path, err)
		}
		files = append(files, File{Name: entry.Name(), SQL: string(data)})
	}

	return Audit(files, pol), nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
