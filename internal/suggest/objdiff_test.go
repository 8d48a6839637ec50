package suggest

import (
	"reflect"
	"testing"
)

func TestObjectTypeMismatchesSingleProperty(t *testing.T) {
	msg := "Argument of type '{ a: string; b: string }' is not assignable " +
		"to parameter of type '{ a: string; b: number }'."
	got := objectTypeMismatches(msg)
	want := []propertyMismatch{{Name: "b", Provided: "string", Expected: "number"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("objectTypeMismatches = %v, want %v", got, want)
	}
}

func TestObjectTypeMismatchesSortedByName(t *testing.T) {
	msg := "Argument of type '{ z: number; a: number; m: string }' is not assignable " +
		"to parameter of type '{ z: string; a: boolean; m: string }'."
	got := objectTypeMismatches(msg)
	want := []propertyMismatch{
		{Name: "a", Provided: "number", Expected: "boolean"},
		{Name: "z", Provided: "number", Expected: "string"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("objectTypeMismatches = %v, want %v", got, want)
	}
}

func TestObjectTypeMismatchesIgnoresMissingProperties(t *testing.T) {
	msg := "Argument of type '{ a: string }' is not assignable " +
		"to parameter of type '{ a: string; b: number }'."
	if got := objectTypeMismatches(msg); len(got) != 0 {
		t.Fatalf("objectTypeMismatches = %v, want none", got)
	}
}

func TestObjectTypeMismatchesMissingMarker(t *testing.T) {
	msgs := []string{
		"Type 'string' is not assignable to type 'number'.",
		"Argument of type '{ a: string }' has no parameter clause",
		"",
	}
	for _, msg := range msgs {
		if got := objectTypeMismatches(msg); got != nil {
			t.Errorf("objectTypeMismatches(%q) = %v, want nil", msg, got)
		}
	}
}

func TestParseObjectProperties(t *testing.T) {
	tests := []struct {
		lit  string
		want map[string]string
	}{
		{"{ a: string; b: number }", map[string]string{"a": "string", "b": "number"}},
		{"{a:string;b:number;}", map[string]string{"a": "string", "b": "number"}},
		{"  { x: () => void }  ", map[string]string{"x": "() => void"}},
		{"string", map[string]string{}},
		{"{}", map[string]string{}},
		{"{ garbage }", map[string]string{}},
	}
	for _, tt := range tests {
		got := parseObjectProperties(tt.lit)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseObjectProperties(%q) = %v, want %v", tt.lit, got, tt.want)
		}
	}
}
