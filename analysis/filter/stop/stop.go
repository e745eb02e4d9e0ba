package stop

import (
	"fmt"
	"strings"

	bleveanalysis "github.com/blevesearch/bleve/analysis"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/analysis/registry"
)

const Name = "stop"

var _ analysis.TokenFilter = &StopFilter{}

type StopFilter struct {
	words bleveanalysis.TokenMap
}

func New(words []string) *StopFilter {
	m := bleveanalysis.NewTokenMap()
	for _, w := range words {
		m.AddToken(w)
	}
	return &StopFilter{words: m}
}

func (sf *StopFilter) Filter(input analysis.TokenSet) analysis.TokenSet {
	index := 0
	for _, token := range input {
		if !sf.words[string(token.Term)] {
			input[index] = token
			index++
		}
	}
	return input[:index]
}

func factory(params map[string]string) (analysis.TokenFilter, error) {
	for k := range params {
		if k != "words" {
			return nil, fmt.Errorf("%s filter: unknown parameter %q", Name, k)
		}
	}
	raw, ok := params["words"]
	if !ok {
		return nil, fmt.Errorf("%s filter: missing parameter \"words\"", Name)
	}
	var words []string
	for _, w := range strings.Split(raw, ",") {
		w = strings.TrimSpace(w)
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s filter: parameter \"words\" is empty", Name)
	}
	return New(words), nil
}

func init() {
	registry.RegisterTokenFilter(Name, factory)
}
