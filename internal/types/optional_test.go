package types

import (
	"encoding/json"
	"testing"
)

func TestOptionalUnmarshal(t *testing.T) {
	type payload struct {
		State Optional[string] `json:"state"`
	}

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantNull  bool
		wantValue string
	}{
		{
			name:    "absent field stays zero",
			body:    `{}`,
			wantSet: false,
		},
		{
			name:     "explicit null",
			body:     `{"state": null}`,
			wantSet:  true,
			wantNull: true,
		},
		{
			name:      "value",
			body:      `{"state": "NY"}`,
			wantSet:   true,
			wantValue: "NY",
		},
		{
			name:      "empty string is a value, not null",
			body:      `{"state": ""}`,
			wantSet:   true,
			wantValue: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.State.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", p.State.Set, tt.wantSet)
			}
			if p.State.Null != tt.wantNull {
				t.Errorf("Null = %v, want %v", p.State.Null, tt.wantNull)
			}
			if p.State.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", p.State.Value, tt.wantValue)
			}
		})
	}
}

func TestOptionalUnmarshalTypeError(t *testing.T) {
	type payload struct {
		State Optional[string] `json:"state"`
	}
	var p payload
	if err := json.Unmarshal([]byte(`{"state": 7}`), &p); err == nil {
		t.Fatal("expected a type error for a number in a string field")
	}
}

func TestOptionalMarshal(t *testing.T) {
	if got, _ := json.Marshal(Some("NY")); string(got) != `"NY"` {
		t.Errorf("Some: got %s", got)
	}
	if got, _ := json.Marshal(Null[string]()); string(got) != "null" {
		t.Errorf("Null: got %s", got)
	}
	if got, _ := json.Marshal(Optional[string]{}); string(got) != "null" {
		t.Errorf("zero value: got %s", got)
	}
}
