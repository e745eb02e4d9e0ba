package character

import (
	"testing"
	"unicode"
)

func TestTokenize(t *testing.T) {
	tokenizer := New(func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	set := tokenizer.Tokenize([]byte("&&abcd我们??bb$$哈哈哈"))
	if len(set) != 3 {
		t.Fatalf("test failed, size %d", len(set))
	}
	if string(set[0].Term) != "abcd我们" || set[0].Position != 0 {
		t.Fatal("test failed")
	}
	if string(set[1].Term) != "bb" || set[1].Position != 1 {
		t.Fatal("test failed")
	}
	if string(set[2].Term) != "哈哈哈" || set[2].Position != 2 {
		t.Fatal("test failed")
	}
}

func TestTokenizeOffsets(t *testing.T) {
	tokenizer := New(unicode.IsSpace)
	set := tokenizer.Tokenize([]byte("ab bc  abc"))
	if len(set) != 3 {
		t.Fatalf("test failed, size %d", len(set))
	}
	if set[0].Start != 0 || set[0].End != 2 {
		t.Fatal("test failed")
	}
	if set[2].Start != 7 || set[2].End != 10 {
		t.Fatal("test failed")
	}
}

func TestFactoryClasses(t *testing.T) {
	for _, class := range []string{"whitespace", "letter", "digit", "notletter"} {
		if _, err := factory(map[string]string{"class": class}); err != nil {
			t.Fatalf("test failed, class %s err %v", class, err)
		}
	}
}

func TestNotLetterClass(t *testing.T) {
	tokenizer, err := factory(map[string]string{"class": "notletter"})
	if err != nil {
		t.Fatalf("test failed, err %v", err)
	}
	set := tokenizer.Tokenize([]byte("12ab&&cd34"))
	if len(set) != 3 {
		t.Fatalf("test failed, size %d", len(set))
	}
	if string(set[0].Term) != "12" || string(set[1].Term) != "&&" || string(set[2].Term) != "34" {
		t.Fatal("test failed")
	}
}

func TestFactory(t *testing.T) {
	if _, err := factory(map[string]string{"class": "whitespace"}); err != nil {
		t.Fatalf("test failed, err %v", err)
	}
	if _, err := factory(map[string]string{}); err == nil {
		t.Fatal("expected error for missing class")
	}
	if _, err := factory(map[string]string{"class": "whitespace", "mode": "x"}); err == nil {
		t.Fatal("expected error for unknown parameter")
	}
	if _, err := factory(map[string]string{"class": "vowel"}); err == nil {
		t.Fatal("expected error for unsupported class")
	}
}
