package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// nodesKey names the record list inside a wrapping table.
const nodesKey = "nodes"

func decodeJSON(data []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return recordList(doc)
}

func decodeYAML(data []byte) ([]map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return recordList(doc)
}

func decodeTOML(data []byte) ([]map[string]any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, nil
	}
	return recordList(doc)
}

// recordList accepts either a bare list of tables or a table holding one
// under "nodes".
func recordList(doc any) ([]map[string]any, error) {
	switch v := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		return tables(v)
	case []map[string]any:
		return v, nil
	case map[string]any:
		inner, ok := v[nodesKey]
		if !ok {
			return nil, errors.New(`expected a list of records or a "nodes" list`)
		}
		return recordList(inner)
	default:
		return nil, fmt.Errorf("expected a list of records, got %T", doc)
	}
}

func tables(items []any) ([]map[string]any, error) {
	records := make([]map[string]any, len(items))
	for i, item := range items {
		table, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d: expected a table, got %T", i, item)
		}
		records[i] = table
	}
	return records, nil
}
