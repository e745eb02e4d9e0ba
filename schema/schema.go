package schema

// Schema is the parsed form of a field-analysis schema document. It is
// immutable after Parse.
type Schema struct {
	// DefaultMatchVersion holds the raw defaultLuceneMatchVersion value,
	// empty when the document declares none.
	DefaultMatchVersion string

	Analyzers []AnalyzerSpec
	Fields    []FieldRule
}

// AnalyzerSpec declares one named analysis pipeline. The order of char
// filters and token filters is the processing order.
type AnalyzerSpec struct {
	Name        string
	CharFilters []ComponentSpec
	Tokenizer   ComponentSpec
	Filters     []ComponentSpec
}

// ComponentSpec identifies one pipeline component: a type tag naming the
// factory, plus the remaining parameters handed to it.
type ComponentSpec struct {
	Type   string
	Params map[string]string
}

// FieldRule maps fields to an analyzer, either by exact field name or by a
// regex matched against the whole field name. Exactly one of Name and Regex
// may be set; the validator enforces it. Analyzer names a declared
// AnalyzerSpec or a registered standalone analyzer.
type FieldRule struct {
	Name     string
	Regex    string
	Analyzer string
}
