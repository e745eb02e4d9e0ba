package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	_ "github.com/dawson2000/fieldanalysis/analysis/builtin"
	_ "github.com/dawson2000/fieldanalysis/analysis/external/blevext"
	"github.com/dawson2000/fieldanalysis/resolver"
	utiljson "github.com/dawson2000/fieldanalysis/util/json"
)

const DEFAULT_LINT_CONFIG = `
# schemalint configuration.

[lint]
# schema files to lint, merged with command line arguments
schemas = []
# list declared fields for valid schemas
verbose = false
# print results as a JSON array instead of text
json = false
`

type Config struct {
	Lint LintConfig `toml:"lint"`
}

type LintConfig struct {
	Schemas []string `toml:"schemas"`
	Verbose bool     `toml:"verbose"`
	JSON    bool     `toml:"json"`
}

var (
	configFile = flag.String("c", "", "config file path")
	jsonOut    = flag.Bool("json", false, "print results as a JSON array")
)

func loadConfig(path string) (*Config, error) {
	cfg := new(Config)
	if _, err := toml.Decode(DEFAULT_LINT_CONFIG, cfg); err != nil {
		return nil, err
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

type lintResult struct {
	Schema   string   `json:"schema"`
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages,omitempty"`
	Fields   []string `json:"fields,omitempty"`
}

func lint(path string, verbose bool) *lintResult {
	result := &lintResult{Schema: path}
	data, err := os.ReadFile(path)
	if err != nil {
		result.Messages = []string{err.Error()}
		return result
	}
	r, err := resolver.New(data)
	if err != nil {
		result.Messages = []string{fmt.Sprintf("parse error: %v", err)}
		return result
	}
	if !r.IsValid() {
		result.Messages = strings.Split(r.InvalidMessages(), "\n")
		return result
	}
	result.Valid = true
	if verbose {
		result.Fields = r.Fields()
	}
	return result
}

func printText(result *lintResult) {
	if !result.Valid {
		fmt.Printf("%s: invalid\n", result.Schema)
		for _, msg := range result.Messages {
			fmt.Printf("  %s\n", msg)
		}
		return
	}
	fmt.Printf("%s: ok\n", result.Schema)
	for _, field := range result.Fields {
		fmt.Printf("  field %s\n", field)
	}
}

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "schemalint: %v\n", err)
		os.Exit(2)
	}
	if *jsonOut {
		cfg.Lint.JSON = true
	}

	paths := append(cfg.Lint.Schemas, flag.Args()...)
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "schemalint: no schema files given")
		flag.Usage()
		os.Exit(2)
	}

	ok := true
	results := make([]*lintResult, 0, len(paths))
	for _, path := range paths {
		result := lint(path, cfg.Lint.Verbose)
		results = append(results, result)
		if !result.Valid {
			ok = false
		}
		if !cfg.Lint.JSON {
			printText(result)
		}
	}
	if cfg.Lint.JSON {
		data, err := utiljson.Marshal(results)
		if err != nil {
			fmt.Fprintf(os.Stderr, "schemalint: %v\n", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	}
	if !ok {
		os.Exit(1)
	}
}
