package resolver

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/analysis/registry"
	"github.com/dawson2000/fieldanalysis/schema"
)

// Resolver maps field names to ready analysis pipelines, building each
// pipeline on first use and caching it per field and per analyzer name so
// fields sharing one declaration share one build. A Resolver is safe for
// concurrent use; the token streams it hands out are not.
type Resolver struct {
	schema  *schema.Schema
	reg     *registry.Registry
	rules   *ruleIndex
	specs   map[string]*schema.AnalyzerSpec
	version analysis.Version

	// mu guards both caches and the validity state. Builds run inside the
	// critical section so each analyzer is built at most once.
	mu         sync.Mutex
	fieldCache map[string]analysis.Analyzer
	specCache  map[string]analysis.Analyzer
	valid      bool
	messages   []string
}

// New parses data and statically validates it against the default component
// registry. Parse failures are returned; consistency violations only mark
// the resolver invalid, so callers can lint a schema through IsValid and
// InvalidMessages without analyzing anything.
func New(data []byte) (*Resolver, error) {
	return NewWithRegistry(data, registry.Default())
}

// NewWithRegistry is New against a caller-populated registry.
func NewWithRegistry(data []byte, reg *registry.Registry) (*Resolver, error) {
	s, err := schema.Parse(data)
	if err != nil {
		return nil, err
	}
	r := &Resolver{
		schema:     s,
		reg:        reg,
		rules:      newRuleIndex(s.Fields),
		specs:      make(map[string]*schema.AnalyzerSpec, len(s.Analyzers)),
		fieldCache: make(map[string]analysis.Analyzer),
		specCache:  make(map[string]analysis.Analyzer),
	}
	for i := range s.Analyzers {
		spec := &s.Analyzers[i]
		if _, ok := r.specs[spec.Name]; !ok {
			r.specs[spec.Name] = spec
		}
	}
	r.valid, r.messages = schema.Validate(s, reg)
	if s.DefaultMatchVersion != "" {
		// an unparseable version was already reported by the validator
		r.version, _ = analysis.ParseVersion(s.DefaultMatchVersion)
	}
	return r, nil
}

// IsValid reports whether the schema passed static validation and every
// pipeline built so far succeeded. It can flip to false on the first use of
// a broken declaration and never flips back.
func (r *Resolver) IsValid() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.valid
}

// InvalidMessages returns the accumulated violations, one per line.
func (r *Resolver) InvalidMessages() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.messages, "\n")
}

// Fields returns the exact field names declared by name rules, in
// declaration order.
func (r *Resolver) Fields() []string {
	var fields []string
	for _, rule := range r.schema.Fields {
		if rule.Name != "" && rule.Regex == "" {
			fields = append(fields, rule.Name)
		}
	}
	return fields
}

// FieldAnalyzer resolves field to its analyzer, building and caching it on
// first use. The returned analyzer is shareable across goroutines.
func (r *Resolver) FieldAnalyzer(field string) (analysis.Analyzer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveLocked(field)
}

func (r *Resolver) resolveLocked(field string) (analysis.Analyzer, error) {
	if a, ok := r.fieldCache[field]; ok {
		return a, nil
	}
	if !r.valid {
		return nil, &InvalidSchemaError{Messages: append([]string(nil), r.messages...)}
	}
	rule := r.rules.resolve(field)
	if rule == nil {
		return nil, fmt.Errorf("no analyzer for field %q", field)
	}
	a, err := r.analyzerLocked(rule.Analyzer)
	if err != nil {
		// one broken declaration poisons the whole schema, for every
		// field, until a new resolver is constructed
		r.valid = false
		r.messages = append(r.messages, err.Error())
		return nil, err
	}
	r.fieldCache[field] = a
	return a, nil
}

// analyzerLocked returns the analyzer behind name: a declared pipeline spec,
// built once and shared, or a standalone analyzer from the registry.
func (r *Resolver) analyzerLocked(name string) (analysis.Analyzer, error) {
	if a, ok := r.specCache[name]; ok {
		return a, nil
	}
	var a analysis.Analyzer
	var err error
	if spec, ok := r.specs[name]; ok {
		a, err = r.buildPipeline(spec)
	} else {
		a, err = r.reg.BuildAnalyzer(name, r.version)
	}
	if err != nil {
		return nil, err
	}
	r.specCache[name] = a
	return a, nil
}

// Analyze resolves field and tokenizes text. A nil text short-circuits to an
// empty token set without resolving the field.
func (r *Resolver) Analyze(field string, text []byte) (analysis.TokenSet, error) {
	if text == nil {
		return nil, nil
	}
	a, err := r.FieldAnalyzer(field)
	if err != nil {
		return nil, err
	}
	return analysis.Drain(analysis.NewTokenStream(a, text)), nil
}

// AnalyzeFields applies Analyze to every entry, keyed by field. Iteration
// order over the entries is unspecified.
func (r *Resolver) AnalyzeFields(fields map[string][]byte) (map[string]analysis.TokenSet, error) {
	out := make(map[string]analysis.TokenSet, len(fields))
	for field, text := range fields {
		set, err := r.Analyze(field, text)
		if err != nil {
			return nil, err
		}
		out[field] = set
	}
	return out, nil
}

// AnalyzeMultiValue flattens the tokens of every value, in the given value
// order, into one set. Nothing is deduplicated.
func (r *Resolver) AnalyzeMultiValue(field string, values ...[]byte) (analysis.TokenSet, error) {
	var out analysis.TokenSet
	for _, v := range values {
		set, err := r.Analyze(field, v)
		if err != nil {
			return nil, err
		}
		out = append(out, set...)
	}
	return out, nil
}

// AnalyzeMultiValueFields applies AnalyzeMultiValue to every entry, keyed by
// field.
func (r *Resolver) AnalyzeMultiValueFields(fields map[string][][]byte) (map[string]analysis.TokenSet, error) {
	out := make(map[string]analysis.TokenSet, len(fields))
	for field, values := range fields {
		set, err := r.AnalyzeMultiValue(field, values...)
		if err != nil {
			return nil, err
		}
		out[field] = set
	}
	return out, nil
}

// TokenStream resolves field and returns the raw token stream over text for
// callers that drive it themselves. The stream must stay confined to one
// goroutine at a time.
func (r *Resolver) TokenStream(field string, text []byte) (*analysis.TokenStream, error) {
	a, err := r.FieldAnalyzer(field)
	if err != nil {
		return nil, err
	}
	return analysis.NewTokenStream(a, text), nil
}
