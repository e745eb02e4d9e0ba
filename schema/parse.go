package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	utiljson "github.com/dawson2000/fieldanalysis/util/json"
)

type schemaDoc struct {
	DefaultMatchVersion string        `json:"defaultLuceneMatchVersion"`
	Analyzers           []analyzerDoc `json:"analyzers"`
	Fields              *[]fieldDoc   `json:"fields"`
}

type analyzerDoc struct {
	Name        string          `json:"name"`
	CharFilters []ComponentSpec `json:"charFilters"`
	Tokenizer   *ComponentSpec  `json:"tokenizer"`
	Filters     []ComponentSpec `json:"filters"`
}

type fieldDoc struct {
	Name     string  `json:"name"`
	Regex    string  `json:"regex"`
	Analyzer *string `json:"analyzer"`
}

// Parse turns a raw JSON schema document into a Schema. It fails only on
// structural problems: malformed JSON, wrong types, missing required keys.
// Consistency rules are the validator's job.
func Parse(data []byte) (*Schema, error) {
	var doc schemaDoc
	if err := utiljson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	if doc.Fields == nil {
		return nil, errors.New(`schema: missing required key "fields"`)
	}

	s := &Schema{DefaultMatchVersion: doc.DefaultMatchVersion}

	for i, a := range doc.Analyzers {
		if a.Name == "" {
			return nil, fmt.Errorf(`schema: analyzer %d: missing required key "name"`, i)
		}
		if a.Tokenizer == nil {
			return nil, fmt.Errorf(`schema: analyzer %q: missing required key "tokenizer"`, a.Name)
		}
		s.Analyzers = append(s.Analyzers, AnalyzerSpec{
			Name:        a.Name,
			CharFilters: a.CharFilters,
			Tokenizer:   *a.Tokenizer,
			Filters:     a.Filters,
		})
	}

	for i, f := range *doc.Fields {
		if f.Analyzer == nil || *f.Analyzer == "" {
			return nil, fmt.Errorf(`schema: field rule %d: missing required key "analyzer"`, i)
		}
		s.Fields = append(s.Fields, FieldRule{
			Name:     f.Name,
			Regex:    f.Regex,
			Analyzer: *f.Analyzer,
		})
	}

	return s, nil
}

// UnmarshalJSON reads a component object: a required "type" key plus
// arbitrary string-valued parameters.
func (c *ComponentSpec) UnmarshalJSON(data []byte) error {
	tmp := make(map[string]interface{})
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	params := make(map[string]string, len(tmp))
	for k, v := range tmp {
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("component parameter %q must be a string", k)
		}
		params[k] = s
	}
	typ, ok := params["type"]
	if !ok || typ == "" {
		return errors.New(`component missing required key "type"`)
	}
	delete(params, "type")
	c.Type = typ
	c.Params = params
	return nil
}
