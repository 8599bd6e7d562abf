package loader

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

// Record field names.
const (
	fieldID       = "id"
	fieldParent   = "parent"
	fieldTitle    = "title"
	fieldURI      = "uri"
	fieldPosition = "position"
	fieldMetadata = "metadata"
)

// toNodes converts decoded records into nodes. A missing id is left empty;
// a parent of 0 or "" marks a top-level node.
func toNodes(records []map[string]any) ([]domain.Node, error) {
	nodes := make([]domain.Node, 0, len(records))
	for i, rec := range records {
		node, err := toNode(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func toNode(rec map[string]any) (domain.Node, error) {
	var node domain.Node
	var err error

	if node.ID, err = keyString(rec[fieldID]); err != nil {
		return node, fmt.Errorf("%s: %w", fieldID, err)
	}
	if node.ParentID, err = keyString(rec[fieldParent]); err != nil {
		return node, fmt.Errorf("%s: %w", fieldParent, err)
	}
	if node.ParentID == "0" {
		node.ParentID = ""
	}
	if node.Title, err = optionalString(rec[fieldTitle]); err != nil {
		return node, fmt.Errorf("%s: %w", fieldTitle, err)
	}
	if node.URI, err = optionalString(rec[fieldURI]); err != nil {
		return node, fmt.Errorf("%s: %w", fieldURI, err)
	}
	if node.Position, err = optionalInt(rec[fieldPosition]); err != nil {
		return node, fmt.Errorf("%s: %w", fieldPosition, err)
	}

	if raw, ok := rec[fieldMetadata]; ok && raw != nil {
		meta, ok := raw.(map[string]any)
		if !ok {
			return node, fmt.Errorf("%s: expected a table, got %T", fieldMetadata, raw)
		}
		node.Metadata = meta
	}

	return node, nil
}

// keyString normalises an id or parent value. Integers from any of the
// decoders become their decimal form so "7" and 7 refer to the same node.
func keyString(v any) (string, error) {
	switch k := v.(type) {
	case nil:
		return "", nil
	case string:
		return k, nil
	case json.Number:
		if n, err := k.Int64(); err == nil {
			return strconv.FormatInt(n, 10), nil
		}
		return "", fmt.Errorf("expected an integer, got %s", k.String())
	case int:
		return strconv.Itoa(k), nil
	case int64:
		return strconv.FormatInt(k, 10), nil
	case uint64:
		return strconv.FormatUint(k, 10), nil
	case float64:
		if k != math.Trunc(k) {
			return "", fmt.Errorf("expected an integer, got %v", k)
		}
		return strconv.FormatInt(int64(k), 10), nil
	default:
		return "", fmt.Errorf("expected a string or integer, got %T", v)
	}
}

func optionalString(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	default:
		return "", fmt.Errorf("expected a string, got %T", v)
	}
}

func optionalInt(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("expected an integer, got %s", n.String())
		}
		return int(i), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}
