package lower

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dawson2000/fieldanalysis/analysis"
	"github.com/dawson2000/fieldanalysis/analysis/registry"
)

const Name = "lower"

var _ analysis.TokenFilter = &LowerFilter{}

type LowerFilter struct {
}

func New() *LowerFilter {
	return &LowerFilter{}
}

func (l *LowerFilter) Filter(set analysis.TokenSet) analysis.TokenSet {
	for _, token := range set {
		// copy the term after to lower
		token.Term = toLowerCopy(token.Term)
	}
	return set
}

func toLowerCopy(s []byte) []byte {
	maxbytes := len(s)
	nbytes := 0
	b := make([]byte, maxbytes)
	for i := 0; i < len(s); {
		wid := 1
		r := rune(s[i])
		if r >= utf8.RuneSelf {
			r, wid = utf8.DecodeRune(s[i:])
		}
		r = unicode.ToLower(r)
		if r >= 0 {
			// final sigma
			if r == 'σ' && i+2 == len(s) {
				r = 'ς'
			}
			rl := utf8.RuneLen(r)
			if rl < 0 {
				rl = len(string(utf8.RuneError))
			}
			if nbytes+rl > maxbytes {
				maxbytes = maxbytes*2 + utf8.UTFMax
				nb := make([]byte, maxbytes)
				copy(nb, b[0:nbytes])
				b = nb
			}
			nbytes += utf8.EncodeRune(b[nbytes:maxbytes], r)
		}
		i += wid
	}
	return b[0:nbytes]
}

func factory(params map[string]string) (analysis.TokenFilter, error) {
	for k := range params {
		return nil, fmt.Errorf("%s filter: unknown parameter %q", Name, k)
	}
	return New(), nil
}

func init() {
	registry.RegisterTokenFilter(Name, factory)
}
