package registry

import (
	"fmt"

	"github.com/dawson2000/fieldanalysis/analysis"
)

// CharFilterFactory builds a char filter from the parameters declared on its
// component spec, the type tag excluded. Factories reject parameters they do
// not understand.
type CharFilterFactory func(params map[string]string) (analysis.CharFilter, error)

type TokenizerFactory func(params map[string]string) (analysis.Tokenizer, error)

type TokenFilterFactory func(params map[string]string) (analysis.TokenFilter, error)

// AnalyzerFactory builds a standalone analyzer referenced by a field rule
// outside any schema-declared pipeline. The schema's default match version is
// passed when one is declared, the zero Version otherwise.
type AnalyzerFactory func(version analysis.Version) (analysis.Analyzer, error)

// Registry maps component type tags to factories, one namespace per
// capability. Populate it before handing it to a resolver; registration is
// not synchronized.
type Registry struct {
	charFilters  map[string]CharFilterFactory
	tokenizers   map[string]TokenizerFactory
	tokenFilters map[string]TokenFilterFactory
	analyzers    map[string]AnalyzerFactory
}

func New() *Registry {
	return &Registry{
		charFilters:  make(map[string]CharFilterFactory),
		tokenizers:   make(map[string]TokenizerFactory),
		tokenFilters: make(map[string]TokenFilterFactory),
		analyzers:    make(map[string]AnalyzerFactory),
	}
}

func (r *Registry) RegisterCharFilter(name string, f CharFilterFactory) {
	if _, ok := r.charFilters[name]; ok {
		return
	}
	r.charFilters[name] = f
}

func (r *Registry) RegisterTokenizer(name string, f TokenizerFactory) {
	if _, ok := r.tokenizers[name]; ok {
		return
	}
	r.tokenizers[name] = f
}

func (r *Registry) RegisterTokenFilter(name string, f TokenFilterFactory) {
	if _, ok := r.tokenFilters[name]; ok {
		return
	}
	r.tokenFilters[name] = f
}

func (r *Registry) RegisterAnalyzer(name string, f AnalyzerFactory) {
	if _, ok := r.analyzers[name]; ok {
		return
	}
	r.analyzers[name] = f
}

func (r *Registry) BuildCharFilter(name string, params map[string]string) (analysis.CharFilter, error) {
	f, ok := r.charFilters[name]
	if !ok {
		return nil, fmt.Errorf("unknown char filter type %q", name)
	}
	return f(params)
}

func (r *Registry) BuildTokenizer(name string, params map[string]string) (analysis.Tokenizer, error) {
	f, ok := r.tokenizers[name]
	if !ok {
		return nil, fmt.Errorf("unknown tokenizer type %q", name)
	}
	return f(params)
}

func (r *Registry) BuildTokenFilter(name string, params map[string]string) (analysis.TokenFilter, error) {
	f, ok := r.tokenFilters[name]
	if !ok {
		return nil, fmt.Errorf("unknown token filter type %q", name)
	}
	return f(params)
}

func (r *Registry) BuildAnalyzer(name string, version analysis.Version) (analysis.Analyzer, error) {
	f, ok := r.analyzers[name]
	if !ok {
		return nil, fmt.Errorf("unknown analyzer %q", name)
	}
	return f(version)
}

// HasAnalyzer reports whether name is registered as a standalone analyzer.
func (r *Registry) HasAnalyzer(name string) bool {
	_, ok := r.analyzers[name]
	return ok
}

// Known reports whether name is registered under any capability.
func (r *Registry) Known(name string) bool {
	if _, ok := r.analyzers[name]; ok {
		return true
	}
	if _, ok := r.tokenizers[name]; ok {
		return true
	}
	if _, ok := r.tokenFilters[name]; ok {
		return true
	}
	_, ok := r.charFilters[name]
	return ok
}
