package analysis

var _ Analyzer = &Pipeline{}

// Pipeline is a runnable analyzer assembled from a schema declaration:
// zero or more char filters, exactly one tokenizer, zero or more token
// filters, applied in declared order.
type Pipeline struct {
	version     Version
	charFilters []CharFilter
	tokenizer   Tokenizer
	filters     []TokenFilter
}

func NewPipeline(version Version, charFilters []CharFilter, tokenizer Tokenizer, filters []TokenFilter) *Pipeline {
	return &Pipeline{
		version:     version,
		charFilters: charFilters,
		tokenizer:   tokenizer,
		filters:     filters,
	}
}

func (p *Pipeline) Version() Version {
	return p.version
}

func (p *Pipeline) Analyze(input []byte) TokenSet {
	for _, cf := range p.charFilters {
		input = cf.Filter(input)
	}
	set := p.tokenizer.Tokenize(input)
	for _, f := range p.filters {
		set = f.Filter(set)
	}
	return set
}
