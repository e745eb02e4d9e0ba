package schema

import (
	"fmt"
	"regexp"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/analysis/registry"
)

// Validate runs every statically checkable consistency rule against s,
// collecting all violations instead of stopping at the first. It never
// builds a pipeline: unknown component types and bad parameters only surface
// when a field governed by the broken analyzer is first used.
func Validate(s *Schema, reg *registry.Registry) (bool, []string) {
	var msgs []string

	if s.DefaultMatchVersion != "" {
		v, err := analysis.ParseVersion(s.DefaultMatchVersion)
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("defaultLuceneMatchVersion %q: %v", s.DefaultMatchVersion, err))
		} else if !v.AtLeast(analysis.MinVersion) {
			msgs = append(msgs, fmt.Sprintf("defaultLuceneMatchVersion %q is below the minimum supported version %s",
				s.DefaultMatchVersion, analysis.MinVersion))
		}
	}

	declared := make(map[string]bool, len(s.Analyzers))
	for _, a := range s.Analyzers {
		if declared[a.Name] {
			msgs = append(msgs, fmt.Sprintf("duplicate analyzer definition %q", a.Name))
			continue
		}
		declared[a.Name] = true
	}

	for i, rule := range s.Fields {
		switch {
		case rule.Name != "" && rule.Regex != "":
			msgs = append(msgs, fmt.Sprintf("field rule %d: exactly one of name and regex must be set, got both (name %q, regex %q)",
				i, rule.Name, rule.Regex))
		case rule.Name == "" && rule.Regex == "":
			msgs = append(msgs, fmt.Sprintf("field rule %d: exactly one of name and regex must be set, got neither", i))
		case rule.Regex != "":
			if _, err := regexp.Compile(rule.Regex); err != nil {
				msgs = append(msgs, fmt.Sprintf("field rule %d: regex %q does not compile: %v", i, rule.Regex, err))
			}
		}

		switch {
		case declared[rule.Analyzer]:
		case reg.HasAnalyzer(rule.Analyzer):
		case reg.Known(rule.Analyzer):
			msgs = append(msgs, fmt.Sprintf("field rule %d: %q is registered but is not an analyzer", i, rule.Analyzer))
		default:
			msgs = append(msgs, fmt.Sprintf("field rule %d: analyzer %q not found", i, rule.Analyzer))
		}
	}

	return len(msgs) == 0, msgs
}
