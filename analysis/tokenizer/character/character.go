package character

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/analysis/registry"
)

const Name = "character"

// BreakFunc reports whether r separates tokens.
type BreakFunc func(r rune) bool

var _ analysis.Tokenizer = &Tokenizer{}

type Tokenizer struct {
	breaks BreakFunc
}

func New(f BreakFunc) *Tokenizer {
	return &Tokenizer{breaks: f}
}

func (t *Tokenizer) Tokenize(data []byte) analysis.TokenSet {
	offset := 0
	start := 0
	end := 0
	pos := 0
	var set analysis.TokenSet
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError {
			return set
		}
		offset += size
		if t.breaks(r) {
			if end == start {
				start += size
				end += size
				continue
			}
			// complete token
			set = append(set, &analysis.Token{
				Start:    start,
				End:      end,
				Term:     data[start:end],
				Position: pos,
				Type:     analysis.Text,
			})
			pos++
			end += size
			start = end
		} else {
			end += size
		}
	}
	if end > start {
		set = append(set, &analysis.Token{
			Start:    start,
			End:      end,
			Term:     data[start:end],
			Position: pos,
			Type:     analysis.Text,
		})
	}
	return set
}

func factory(params map[string]string) (analysis.Tokenizer, error) {
	for k := range params {
		if k != "class" {
			return nil, fmt.Errorf("%s tokenizer: unknown parameter %q", Name, k)
		}
	}
	class, ok := params["class"]
	if !ok {
		return nil, fmt.Errorf("%s tokenizer: missing parameter \"class\"", Name)
	}
	switch class {
	case "whitespace":
		return New(unicode.IsSpace), nil
	case "letter":
		return New(func(r rune) bool { return !unicode.IsLetter(r) }), nil
	case "digit":
		return New(func(r rune) bool { return !unicode.IsDigit(r) }), nil
	case "notletter":
		return New(unicode.IsLetter), nil
	default:
		return nil, fmt.Errorf("%s tokenizer: unsupported class %q", Name, class)
	}
}

func init() {
	registry.RegisterTokenizer(Name, factory)
}
