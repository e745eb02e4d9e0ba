package whitespace

import (
	"fmt"
	"unicode"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/analysis/registry"
	"github.com/dawson2000/fieldanalysis/analysis/tokenizer/character"
)

const Name = "whitespace"

func New() *character.Tokenizer {
	return character.New(unicode.IsSpace)
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
