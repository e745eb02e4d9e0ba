package unicode

import (
	"fmt"

	"github.com/blevesearch/segment"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/analysis/registry"
)

const Name = "unicode"

var _ analysis.Tokenizer = &UnicodeTokenizer{}

// UnicodeTokenizer splits input on Unicode word boundaries.
type UnicodeTokenizer struct {
}

func New() *UnicodeTokenizer {
	return &UnicodeTokenizer{}
}

func (t *UnicodeTokenizer) Tokenize(input []byte) analysis.TokenSet {
	var set analysis.TokenSet
	segmenter := segment.NewWordSegmenterDirect(input)
	offset := 0
	pos := 0
	for segmenter.Segment() {
		b := segmenter.Bytes()
		if segmenter.Type() != segment.None {
			set = append(set, &analysis.Token{
				Start:    offset,
				End:      offset + len(b),
				Term:     b,
				Position: pos,
				Type:     tokenType(segmenter.Type()),
			})
			pos++
		}
		offset += len(b)
	}
	// a malformed tail yields the tokens segmented so far
	return set
}

func tokenType(segmentType int) analysis.TokenType {
	if segmentType == segment.Number {
		return analysis.Numeric
	}
	return analysis.Text
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
