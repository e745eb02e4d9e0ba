package analysis

// Analyzer turns raw text into an ordered token set. An analyzer may be
// shared across goroutines.
type Analyzer interface {
	Analyze(input []byte) TokenSet
}

// CharFilter rewrites raw input bytes before tokenization.
type CharFilter interface {
	Filter(input []byte) []byte
}

type Tokenizer interface {
	Tokenize(input []byte) TokenSet
}

type TokenFilter interface {
	Filter(set TokenSet) TokenSet
}
