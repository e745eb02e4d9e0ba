package analysis

import "testing"

type fixedAnalyzer struct {
	set TokenSet
}

func (a *fixedAnalyzer) Analyze(input []byte) TokenSet {
	return a.set
}

func TestTokenStream(t *testing.T) {
	a := &fixedAnalyzer{set: TokenSet{
		{Term: []byte("one"), Position: 0},
		{Term: []byte("two"), Position: 1},
	}}
	s := NewTokenStream(a, nil)
	if string(s.Next().Term) != "one" {
		t.Fatal("test failed")
	}
	s.Reset()
	if string(s.Next().Term) != "one" {
		t.Fatal("test failed")
	}
	if string(s.Next().Term) != "two" {
		t.Fatal("test failed")
	}
	if s.Next() != nil {
		t.Fatal("test failed")
	}
	if err := s.Close(); err != nil {
		t.Fatal("test failed")
	}
	s.Reset()
	if s.Next() != nil {
		t.Fatal("closed stream must stay exhausted")
	}
}

func TestDrain(t *testing.T) {
	a := &fixedAnalyzer{set: TokenSet{
		{Term: []byte("x")},
		{Term: []byte("y")},
	}}
	s := NewTokenStream(a, nil)
	s.Next()
	out := Drain(s)
	if len(out) != 2 {
		t.Fatalf("test failed, size %d", len(out))
	}
	if s.Next() != nil {
		t.Fatal("drained stream must be closed")
	}
}
