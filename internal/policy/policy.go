// Package policy defines which tables must carry row level security and
// which are exempt. The built-in defaults mirror the house schema; a yaml
// policy file replaces them wholesale.
package policy

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Policy lists the tables that must have RLS enabled and the global lookup
// tables that are exempt from it. Names are stored lowercased.
type Policy struct {
	Required []string `yaml:"required"`
	Exempt   []string `yaml:"exempt"`
}

// Default returns the built-in policy: every user-data table must carry RLS,
// global lookup tables are exempt.
func Default() Policy {
	return Policy{
		Required: []string{
			"profiles",
			"accounts",
			"credit_cards",
			"auto_loans",
			"p2p_loans",
			"transactions",
			"subscriptions",
			"transfer_pairs",
			"user_category_rules",
		},
		Exempt: []string{
			"merchant_database", // global merchant data, shared across users
		},
	}
}

// Load reads a yaml policy file. The file replaces the default lists
// entirely; it does not merge with them.
func Load(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, errors.Wrapf(err, "reading policy file %s", path)
	}

	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, errors.Wrapf(err, "parsing policy file %s", path)
	}

	p.normalize()
	return p, nil
}

func (p *Policy) normalize() {
	for i, t := range p.Required {
		p.Required[i] = strings.ToLower(strings.TrimSpace(t))
	}
	for i, t := range p.Exempt {
		p.Exempt[i] = strings.ToLower(strings.TrimSpace(t))
	}
}

// RequiredSet returns the required tables as a set.
func (p Policy) RequiredSet() map[string]bool {
	return toSet(p.Required)
}

// ExemptSet returns the exempt tables as a set.
func (p Policy) ExemptSet() map[string]bool {
	return toSet(p.Exempt)
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		if n != "" {
			set[n] = true
		}
	}
	return set
}
