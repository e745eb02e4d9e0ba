package lower

import (
	"testing"

	"github.com/dawson2000/fieldanalysis/analysis"
)

func TestLower(t *testing.T) {
	f := New()
	set := f.Filter(analysis.TokenSet{&analysis.Token{Term: []byte("AbCd你好")}})
	if len(set) != 1 {
		t.Fatal("test fail")
	}
	if string(set[0].Term) != "abcd你好" {
		t.Fatal("test fail")
	}
	set = f.Filter(analysis.TokenSet{&analysis.Token{Term: []byte("AbΣCȺdΣ")}})
	if len(set) != 1 {
		t.Fatal("test fail")
	}
	if string(set[0].Term) != "abσcⱥdς" {
		t.Fatal("test fail")
	}
}

func TestFactory(t *testing.T) {
	if _, err := factory(nil); err != nil {
		t.Fatalf("test failed, err %v", err)
	}
	if _, err := factory(map[string]string{"locale": "el"}); err == nil {
		t.Fatal("expected error for unknown parameter")
	}
}
