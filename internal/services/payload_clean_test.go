package services

import (
	"reflect"
	"testing"
)

func TestPruneNulls(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  any
	}{
		{
			name:  "null fields dropped",
			input: map[string]any{"name": "Noggin", "occupation": nil},
			want:  map[string]any{"name": "Noggin"},
		},
		{
			name: "empty nested objects collapse upwards",
			input: map[string]any{
				"name":  "Noggin",
				"links": map[string]any{"officer": map[string]any{"self": nil}},
			},
			want: map[string]any{"name": "Noggin"},
		},
		{
			name:  "empty arrays dropped",
			input: map[string]any{"name": "Noggin", "former_names": []any{}},
			want:  map[string]any{"name": "Noggin"},
		},
		{
			name:  "null array entries removed",
			input: map[string]any{"former_names": []any{nil, map[string]any{"surname": "Nog"}}},
			want:  map[string]any{"former_names": []any{map[string]any{"surname": "Nog"}}},
		},
		{
			name:  "scalars survive untouched",
			input: map[string]any{"count": float64(3), "flag": false, "name": ""},
			want:  map[string]any{"count": float64(3), "flag": false, "name": ""},
		},
		{
			name:  "fully empty payload reduces to nil",
			input: map[string]any{"a": nil, "b": map[string]any{}},
			want:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pruneNulls(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("pruneNulls = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestPruneNullsStructInput(t *testing.T) {
	summary := tombstoneSummary("12345678", "appt1", "officer1")
	got, err := pruneNulls(summary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cleaned, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("pruneNulls returned %T, want map", got)
	}
	if _, present := cleaned["name"]; present {
		t.Fatalf("empty name survived pruning: %#v", cleaned)
	}
	links, ok := cleaned["links"].(map[string]any)
	if !ok {
		t.Fatalf("links missing from tombstone: %#v", cleaned)
	}
	if links["self"] != "/company/12345678/appointments/appt1" {
		t.Fatalf("links.self = %v", links["self"])
	}
}
