package catalog

import (
	"encoding/json"
	"testing"
)

func TestProductPatchDistinguishesOmittedAndNull(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantSet   bool
		wantValue *string
	}{
		{"omitted", `{}`, false, nil},
		{"explicit null", `{"description": null}`, true, nil},
		{"value", `{"description": "a phone"}`, true, strVal("a phone")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch ProductPatch
			if err := json.Unmarshal([]byte(tt.payload), &patch); err != nil {
				t.Fatalf("unmarshalling %s: %v", tt.payload, err)
			}
			if patch.Description.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", patch.Description.Set, tt.wantSet)
			}
			if (patch.Description.Value == nil) != (tt.wantValue == nil) {
				t.Fatalf("Value = %v, want %v", patch.Description.Value, tt.wantValue)
			}
			if tt.wantValue != nil && *patch.Description.Value != *tt.wantValue {
				t.Errorf("Value = %q, want %q", *patch.Description.Value, *tt.wantValue)
			}
		})
	}
}

func TestProductPatchCategoryIDs(t *testing.T) {
	var omitted ProductPatch
	if err := json.Unmarshal([]byte(`{"name": "X"}`), &omitted); err != nil {
		t.Fatal(err)
	}
	if omitted.CategoryIDs != nil {
		t.Error("omitted category_ids must stay nil")
	}

	var cleared ProductPatch
	if err := json.Unmarshal([]byte(`{"category_ids": []}`), &cleared); err != nil {
		t.Fatal(err)
	}
	if cleared.CategoryIDs == nil || len(cleared.CategoryIDs) != 0 {
		t.Error("an explicit empty array must decode as a non-nil empty slice")
	}
}

func strVal(s string) *string { return &s }
