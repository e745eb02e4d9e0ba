package analysis

type TokenType int

const (
	Text TokenType = iota
	Numeric
	DateTime
	Boolean
	KeyWord
)

type Token struct {
	// Start specifies the byte offset of the beginning of the term in the
	// input.
	Start int `json:"start"`

	// End specifies the byte offset of the end of the term in the input.
	End  int    `json:"end"`
	Term []byte `json:"term"`

	// Position specifies the index of the token in the emission order of
	// its stream.
	Position int       `json:"position"`
	Type     TokenType `json:"type"`
	KeyWord  bool      `json:"keyword"`
}

type TokenSet []*Token

// Terms returns the token terms in emission order.
func (ts TokenSet) Terms() []string {
	terms := make([]string, len(ts))
	for i, token := range ts {
		terms[i] = string(token.Term)
	}
	return terms
}
