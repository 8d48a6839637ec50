package suggest

import (
	"reflect"
	"testing"

	"tsplain/internal/token"
	"tsplain/internal/tserr"
)

func TestBuildSkipsUncoveredKinds(t *testing.T) {
	diags := []tserr.Diagnostic{
		{Kind: tserr.KindObjectUnknown, Message: "'payload' is of type 'unknown'."},
		{Kind: tserr.KindObjectPossiblyNull, Message: "'node' is possibly 'null'."},
		{Kind: tserr.KindUnsupported, RawCode: "TS9999", Message: "something new"},
	}
	for _, d := range diags {
		if _, ok := Build(d, nil); ok {
			t.Fatalf("Build(%v) produced a suggestion, want none", d.Kind)
		}
		if Covered(d.Kind) {
			t.Fatalf("Covered(%v) = true, want false", d.Kind)
		}
	}
}

func TestBuildCoversEveryHandledKind(t *testing.T) {
	kinds := []tserr.Kind{
		tserr.KindTypeMismatch,
		tserr.KindInlineTypeMismatch,
		tserr.KindMissingParameters,
		tserr.KindNoImplicitAny,
		tserr.KindPropertyMissingInType,
		tserr.KindUnintentionalComparison,
		tserr.KindPropertyDoesNotExist,
		tserr.KindObjectPossiblyUndefined,
		tserr.KindDirectCast,
		tserr.KindSpreadArgument,
		tserr.KindRightOperandNotNumeric,
		tserr.KindLeftOperandNotNumeric,
		tserr.KindIncompatibleOverload,
		tserr.KindInvalidShadow,
		tserr.KindMissingModule,
		tserr.KindReadonlyAssignment,
		tserr.KindInterfaceNotImplemented,
		tserr.KindBasePropertyMismatch,
		tserr.KindUnresolvedIdentifier,
		tserr.KindMissingReturnValue,
		tserr.KindNotCallable,
		tserr.KindInvalidIndexType,
		tserr.KindMistypedProperty,
	}
	for _, k := range kinds {
		if !Covered(k) {
			t.Errorf("Covered(%v) = false, want true", k)
		}
		if _, ok := Build(tserr.Diagnostic{Kind: k}, nil); !ok {
			t.Errorf("Build for %v returned no suggestion", k)
		}
	}
}

func TestBuildUsesTokenAtErrorPosition(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.Ident, Raw: "renderAll", Line: 5, Column: 2},
	}
	d := tserr.Diagnostic{
		Kind:    tserr.KindMissingParameters,
		Line:    5,
		Column:  3,
		Message: "Expected 2 arguments, but got 1.",
	}
	s, ok := Build(d, tokens)
	if !ok {
		t.Fatal("Build returned no suggestion")
	}
	want := "Check if all required arguments are provided when invoking `renderAll`"
	if len(s.Suggestions) != 1 || s.Suggestions[0] != want {
		t.Fatalf("suggestions = %q, want [%q]", s.Suggestions, want)
	}
	if want := "Function `renderAll` is missing 1 or more arguments."; s.Help != want {
		t.Fatalf("help = %q, want %q", s.Help, want)
	}
}

func TestBuildFallsBackWithoutCoveringToken(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.Ident, Raw: "other", Line: 9, Column: 0},
	}
	d := tserr.Diagnostic{
		Kind:    tserr.KindMissingParameters,
		Line:    5,
		Column:  3,
		Message: "Expected 2 arguments, but got 1.",
	}
	s, _ := Build(d, tokens)
	want := "Check if all required arguments are provided when invoking `function`"
	if s.Suggestions[0] != want {
		t.Fatalf("suggestions[0] = %q, want %q", s.Suggestions[0], want)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	d := tserr.Diagnostic{
		Kind: tserr.KindInlineTypeMismatch,
		Message: "Argument of type '{ a: string; b: string; c: string }' is not assignable " +
			"to parameter of type '{ a: number; b: boolean; c: string }'.",
	}
	first, _ := Build(d, nil)
	second, _ := Build(d, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated Build diverged: %v vs %v", first, second)
	}
}
