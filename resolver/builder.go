package resolver

import (
	"fmt"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/schema"
)

// buildPipeline turns one analyzer spec into a runnable pipeline, invoking
// the registry factory of every component in declared order. The first
// factory failure aborts the build, wrapped with the analyzer name.
func (r *Resolver) buildPipeline(spec *schema.AnalyzerSpec) (*analysis.Pipeline, error) {
	charFilters := make([]analysis.CharFilter, 0, len(spec.CharFilters))
	for _, c := range spec.CharFilters {
		cf, err := r.reg.BuildCharFilter(c.Type, c.Params)
		if err != nil {
			return nil, fmt.Errorf("analyzer %q: %w", spec.Name, err)
		}
		charFilters = append(charFilters, cf)
	}

	tokenizer, err := r.reg.BuildTokenizer(spec.Tokenizer.Type, spec.Tokenizer.Params)
	if err != nil {
		return nil, fmt.Errorf("analyzer %q: %w", spec.Name, err)
	}

	filters := make([]analysis.TokenFilter, 0, len(spec.Filters))
	for _, f := range spec.Filters {
		tf, err := r.reg.BuildTokenFilter(f.Type, f.Params)
		if err != nil {
			return nil, fmt.Errorf("analyzer %q: %w", spec.Name, err)
		}
		filters = append(filters, tf)
	}

	return analysis.NewPipeline(r.version, charFilters, tokenizer, filters), nil
}
