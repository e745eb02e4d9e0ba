// Package builtin registers every stock component factory into the default
// registry. Import it for side effects:
//
//	import _ "github.com/dawson2000/fieldanalysis/analysis/builtin"
package builtin

import (
	_ "github.com/dawson2000/fieldanalysis/analysis/charfilter/replace"
	_ "github.com/dawson2000/fieldanalysis/analysis/filter/lower"
	_ "github.com/dawson2000/fieldanalysis/analysis/filter/stop"
	_ "github.com/dawson2000/fieldanalysis/analysis/tokenizer/character"
	_ "github.com/dawson2000/fieldanalysis/analysis/tokenizer/keyword"
	_ "github.com/dawson2000/fieldanalysis/analysis/tokenizer/regexp"
	_ "github.com/dawson2000/fieldanalysis/analysis/tokenizer/unicode"
	_ "github.com/dawson2000/fieldanalysis/analysis/tokenizer/whitespace"
)
