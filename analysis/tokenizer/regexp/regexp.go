package regexp

import (
	"fmt"
	"regexp"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/analysis/registry"
)

const Name = "regexp"

var _ analysis.Tokenizer = &Tokenizer{}

// Tokenizer emits every non-empty match of its pattern as a token.
type Tokenizer struct {
	pattern *regexp.Regexp
}

func New(pattern *regexp.Regexp) *Tokenizer {
	return &Tokenizer{pattern: pattern}
}

func (t *Tokenizer) Tokenize(input []byte) analysis.TokenSet {
	matches := t.pattern.FindAllIndex(input, -1)
	set := make(analysis.TokenSet, 0, len(matches))
	pos := 0
	for _, m := range matches {
		if m[1] == m[0] {
			continue
		}
		set = append(set, &analysis.Token{
			Start:    m[0],
			End:      m[1],
			Term:     input[m[0]:m[1]],
			Position: pos,
			Type:     analysis.Text,
		})
		pos++
	}
	return set
}

func factory(params map[string]string) (analysis.Tokenizer, error) {
	for k := range params {
		if k != "pattern" {
			return nil, fmt.Errorf("%s tokenizer: unknown parameter %q", Name, k)
		}
	}
	expr, ok := params["pattern"]
	if !ok {
		return nil, fmt.Errorf("%s tokenizer: missing parameter \"pattern\"", Name)
	}
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%s tokenizer: pattern %q: %w", Name, expr, err)
	}
	return New(pattern), nil
}

func init() {
	registry.RegisterTokenizer(Name, factory)
}
