package analysis

import "testing"

func TestParseVersion(t *testing.T) {
	cases := map[string]Version{
		"7":          {Major: 7},
		"7.7":        {Major: 7, Minor: 7},
		"7.7.3":      {Major: 7, Minor: 7, Bugfix: 3},
		" 4.0 ":      {Major: 4},
		"LUCENE_4_9": {Major: 4, Minor: 9},
		"lucene_5_0": {Major: 5},
	}
	for in, want := range cases {
		got, err := ParseVersion(in)
		if err != nil {
			t.Fatalf("ParseVersion(%q) err %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseVersion(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "abc", "1.2.3.4", "4.x", "-1"} {
		if _, err := ParseVersion(in); err == nil {
			t.Fatalf("ParseVersion(%q) expected error", in)
		}
	}
}

func TestAtLeast(t *testing.T) {
	v := Version{Major: 4, Minor: 10, Bugfix: 4}
	if !v.AtLeast(MinVersion) {
		t.Fatal("test failed")
	}
	if (Version{Major: 3, Minor: 6}).AtLeast(MinVersion) {
		t.Fatal("test failed")
	}
	if !v.AtLeast(v) {
		t.Fatal("test failed")
	}
	if v.AtLeast(Version{Major: 4, Minor: 10, Bugfix: 5}) {
		t.Fatal("test failed")
	}
}
