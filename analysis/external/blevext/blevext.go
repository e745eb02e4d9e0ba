// Package blevext exposes bleve's stock analyzers as standalone analyzers a
// field rule may reference directly, without declaring a pipeline. Import it
// for side effects; the analyzers register as "bleve/standard",
// "bleve/simple" and "bleve/keyword".
package blevext

import (
	"fmt"

	bleveanalysis "github.com/blevesearch/bleve/analysis"
	_ "github.com/blevesearch/bleve/analysis/analyzer/keyword"
	_ "github.com/blevesearch/bleve/analysis/analyzer/simple"
	_ "github.com/blevesearch/bleve/analysis/analyzer/standard"
	bleveregistry "github.com/blevesearch/bleve/registry"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/analysis/registry"
)

// Prefix namespaces the bleve-backed analyzer names.
const Prefix = "bleve/"

var cache = bleveregistry.NewCache()

var _ analysis.Analyzer = &analyzer{}

type analyzer struct {
	inner *bleveanalysis.Analyzer
}

func (a *analyzer) Analyze(input []byte) analysis.TokenSet {
	stream := a.inner.Analyze(input)
	set := make(analysis.TokenSet, 0, len(stream))
	for i, token := range stream {
		set = append(set, &analysis.Token{
			Start:    token.Start,
			End:      token.End,
			Term:     token.Term,
			Position: i,
			Type:     tokenType(token.Type),
			KeyWord:  token.KeyWord,
		})
	}
	return set
}

func tokenType(t bleveanalysis.TokenType) analysis.TokenType {
	switch t {
	case bleveanalysis.Numeric:
		return analysis.Numeric
	case bleveanalysis.DateTime:
		return analysis.DateTime
	case bleveanalysis.Boolean:
		return analysis.Boolean
	default:
		return analysis.Text
	}
}

func factory(name string) registry.AnalyzerFactory {
	return func(analysis.Version) (analysis.Analyzer, error) {
		inner, err := cache.AnalyzerNamed(name)
		if err != nil {
			return nil, fmt.Errorf("bleve analyzer %q: %w", name, err)
		}
		return &analyzer{inner: inner}, nil
	}
}

func init() {
	for _, name := range []string{"standard", "simple", "keyword"} {
		registry.RegisterAnalyzer(Prefix+name, factory(name))
	}
}
