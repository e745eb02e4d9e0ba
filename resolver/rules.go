package resolver

import (
	"regexp"

	"github.com/dawson2000/fieldanalysis/schema"
)

type regexRule struct {
	pattern *regexp.Regexp
	rule    *schema.FieldRule
}

// ruleIndex resolves a field name to its governing rule: the exact-name
// table always wins, then regex rules are scanned in declaration order and
// the first full match takes the field.
type ruleIndex struct {
	byName map[string]*schema.FieldRule
	regex  []regexRule
}

func newRuleIndex(rules []schema.FieldRule) *ruleIndex {
	idx := &ruleIndex{byName: make(map[string]*schema.FieldRule, len(rules))}
	for i := range rules {
		rule := &rules[i]
		switch {
		case rule.Name != "" && rule.Regex == "":
			if _, ok := idx.byName[rule.Name]; !ok {
				idx.byName[rule.Name] = rule
			}
		case rule.Regex != "" && rule.Name == "":
			pattern, err := regexp.Compile(fullMatch(rule.Regex))
			if err != nil {
				// flagged by the validator, can never govern a field
				continue
			}
			idx.regex = append(idx.regex, regexRule{pattern: pattern, rule: rule})
		}
		// rules with both or neither of name/regex are unusable and were
		// flagged by the validator
	}
	return idx
}

// fullMatch anchors expr so it must cover the whole field name.
func fullMatch(expr string) string {
	return `\A(?:` + expr + `)\z`
}

func (idx *ruleIndex) resolve(field string) *schema.FieldRule {
	if rule, ok := idx.byName[field]; ok {
		return rule
	}
	for _, rr := range idx.regex {
		if rr.pattern.MatchString(field) {
			return rr.rule
		}
	}
	return nil
}
