package analysis

// TokenStream is a pull iterator over the tokens an analyzer produced for
// one input. A stream must stay confined to a single caller at a time; the
// analyzer that created it remains shareable.
type TokenStream struct {
	set    TokenSet
	next   int
	closed bool
}

func NewTokenStream(a Analyzer, input []byte) *TokenStream {
	return &TokenStream{set: a.Analyze(input)}
}

// Next returns the next token in emission order, or nil when the stream is
// exhausted or closed.
func (s *TokenStream) Next() *Token {
	if s.closed || s.next >= len(s.set) {
		return nil
	}
	token := s.set[s.next]
	s.next++
	return token
}

// Reset rewinds the stream to the first token. Reset on a closed stream has
// no effect.
func (s *TokenStream) Reset() {
	if s.closed {
		return
	}
	s.next = 0
}

// Close releases the stream. Close is idempotent; after Close, Next returns
// nil.
func (s *TokenStream) Close() error {
	s.closed = true
	s.set = nil
	return nil
}

// Drain resets s, pulls it to exhaustion and closes it, returning the tokens
// in emission order. The stream is closed on every path out.
func Drain(s *TokenStream) TokenSet {
	defer s.Close()
	s.Reset()
	var out TokenSet
	for token := s.Next(); token != nil; token = s.Next() {
		out = append(out, token)
	}
	return out
}
