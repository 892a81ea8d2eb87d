package services

import (
	"encoding/json"
	"fmt"
)

// pruneNulls strips null-valued fields and empty nested objects/arrays from
// the JSON form of v, recursively, so downstream notification consumers do
// not need to special-case absent optional fields. Applied identically on
// the upsert and delete notification paths.
func pruneNulls(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serialise payload: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("deserialise payload: %w", err)
	}
	return pruneValue(generic), nil
}

func pruneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, nested := range typed {
			if cleaned := pruneValue(nested); cleaned != nil {
				out[k] = cleaned
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, nested := range typed {
			if cleaned := pruneValue(nested); cleaned != nil {
				out = append(out, cleaned)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case nil:
		return nil
	default:
		return v
	}
}
