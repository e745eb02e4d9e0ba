package json

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var jsonAdapter jsoniter.API

func init() {
	jsonAdapter = jsoniter.Config{
		SortMapKeys:            false,
		EscapeHTML:             true,
		ValidateJsonRawMessage: true,
		UseNumber:              true,
	}.Froze()
}

// Marshal marshal v into valid JSON
func Marshal(v interface{}) ([]byte, error) {
	if m, ok := v.(json.Marshaler); ok {
		return m.MarshalJSON()
	}

	return jsonAdapter.Marshal(v)
}

// Unmarshal unmarshal a JSON data to v
func Unmarshal(data []byte, v interface{}) error {
	if m, ok := v.(json.Unmarshaler); ok {
		return m.UnmarshalJSON(data)
	}

	return jsonAdapter.Unmarshal(data, v)
}
