// Package parser provides the lexical primitives the analysis engine is
// built on. Nothing here builds a syntax tree: input is uppercased once and
// then searched with substring markers and small regexes, so arbitrary (even
// malformed) text always scans cleanly.
package parser

import (
	"regexp"
	"strings"
)

// Extraction regexes, applied to normalized (uppercased) text. Identifier
// captures are folded back to lowercase before use.
var (
	// CREATE TABLE [IF NOT EXISTS] <name>, with optional "public." schema
	// qualifier and optional double quotes around identifiers.
	reCreateTable = regexp.MustCompile(`CREATE TABLE (?:IF NOT EXISTS )?(?:"?PUBLIC"?\.)?"?(\w+)"?`)

	// ALTER TABLE [ONLY] <name> ENABLE ROW LEVEL SECURITY
	reEnableRLS = regexp.MustCompile(`ALTER TABLE (?:ONLY )?(?:"?PUBLIC"?\.)?"?(\w+)"? ENABLE ROW LEVEL SECURITY`)
)

// Normalize uppercases SQL text for marker matching. The original text is
// never modified; everything reported back to the caller keeps its casing.
func Normalize(sql string) string {
	return strings.ToUpper(sql)
}

// HasMarker reports whether an uppercase marker occurs in normalized text.
func HasMarker(normalized, marker string) bool {
	return strings.Contains(normalized, marker)
}

// CreatedTables extracts every table name that follows a CREATE TABLE
// marker, tolerating an IF NOT EXISTS qualifier. Names are returned
// lowercased, in order of appearance, duplicates included.
func CreatedTables(normalized string) []string {
	return extract(reCreateTable, normalized)
}

// SecuredTables extracts every table name that follows an ENABLE ROW LEVEL
// SECURITY marker. Names are returned lowercased, in order of appearance.
func SecuredTables(normalized string) []string {
	return extract(reEnableRLS, normalized)
}

func extract(re *regexp.Regexp, normalized string) []string {
	var names []string
	for _, m := range re.FindAllStringSubmatch(normalized, -1) {
		names = append(names, strings.ToLower(m[1]))
	}
	return names
}

// SplitStatements splits migration text on semicolons, skipping semicolons
// inside single-quoted strings, dollar-quoted bodies and line comments.
// Empty pieces are dropped. This is a counting aid for reports, not a
// parser: a statement the splitter misjudges still classifies correctly
// because all marker matching runs over the whole text.
func SplitStatements(sql string) []string {
	var (
		stmts    []string
		start    int
		inQuote  bool
		inDollar bool
		inLineC  bool
	)

	for i := 0; i < len(sql); i++ {
		c := sql[i]

		switch {
		case inLineC:
			if c == '\n' {
				inLineC = false
			}
		case inQuote:
			if c == '\'' {
				// '' is an escaped quote, not a terminator
				if i+1 < len(sql) && sql[i+1] == '\'' {
					i++
				} else {
					inQuote = false
				}
			}
		case inDollar:
			if c == '$' && i+1 < len(sql) && sql[i+1] == '$' {
				inDollar = false
				i++
			}
		default:
			switch c {
			case '\'':
				inQuote = true
			case '$':
				if i+1 < len(sql) && sql[i+1] == '$' {
					inDollar = true
					i++
				}
			case '-':
				if i+1 < len(sql) && sql[i+1] == '-' {
					inLineC = true
					i++
				}
			case ';':
				if piece := strings.TrimSpace(sql[start:i]); piece != "" {
					stmts = append(stmts, piece)
				}
				start = i + 1
			}
		}
	}

	if piece := strings.TrimSpace(sql[start:]); piece != "" {
		stmts = append(stmts, piece)
	}
	return stmts
}
