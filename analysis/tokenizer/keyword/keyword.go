package keyword

import (
	"fmt"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/analysis/registry"
)

const Name = "keyword"

var _ analysis.Tokenizer = &Tokenizer{}

// Tokenizer emits the whole input as a single keyword token.
type Tokenizer struct {
}

func New() *Tokenizer {
	return &Tokenizer{}
}

func (t *Tokenizer) Tokenize(input []byte) analysis.TokenSet {
	if len(input) == 0 {
		return nil
	}
	return analysis.TokenSet{&analysis.Token{
		Start:    0,
		End:      len(input),
		Term:     input,
		Position: 0,
		Type:     analysis.KeyWord,
		KeyWord:  true,
	}}
}

func factory(params map[string]string) (analysis.Tokenizer, error) {
	for k := range params {
		return nil, fmt.Errorf("%s tokenizer: unknown parameter %q", Name, k)
	}
	return New(), nil
}

func init() {
	registry.RegisterTokenizer(Name, factory)
}
