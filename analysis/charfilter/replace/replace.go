package replace

import (
	"fmt"
	"regexp"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/analysis/registry"
)

const Name = "regexp_replace"

var _ analysis.CharFilter = &CharFilter{}

// CharFilter rewrites every match of its pattern before tokenization.
type CharFilter struct {
	pattern     *regexp.Regexp
	replacement []byte
}

func New(pattern *regexp.Regexp, replacement []byte) *CharFilter {
	return &CharFilter{pattern: pattern, replacement: replacement}
}

func (f *CharFilter) Filter(input []byte) []byte {
	return f.pattern.ReplaceAll(input, f.replacement)
}

func factory(params map[string]string) (analysis.CharFilter, error) {
	for k := range params {
		if k != "pattern" && k != "replacement" {
			return nil, fmt.Errorf("%s char filter: unknown parameter %q", Name, k)
		}
	}
	expr, ok := params["pattern"]
	if !ok {
		return nil, fmt.Errorf("%s char filter: missing parameter \"pattern\"", Name)
	}
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%s char filter: pattern %q: %w", Name, expr, err)
	}
	return New(pattern, []byte(params["replacement"])), nil
}

func init() {
	registry.RegisterCharFilter(Name, factory)
}
