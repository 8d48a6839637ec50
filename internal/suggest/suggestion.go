package suggest

import (
	"tsplain/internal/token"
	"tsplain/internal/tserr"
)

// Suggestion is the advice produced for one diagnostic. Suggestions are
// ordered; Help is an optional trailing hint (empty means none).
type Suggestion struct {
	Suggestions []string
	Help        string
}

type handler func(err tserr.Diagnostic, tokens []token.Token) Suggestion

// handlers maps each covered kind to its synthesis strategy. Kinds without
// an entry produce no suggestion: object-is-unknown and object-possibly-null
// are deliberately non-covered (extension point, not an oversight), and
// unsupported codes are never guessed at.
var handlers = map[tserr.Kind]handler{
	tserr.KindTypeMismatch:            typeMismatch,
	tserr.KindInlineTypeMismatch:      inlineTypeMismatch,
	tserr.KindMissingParameters:       missingParameters,
	tserr.KindNoImplicitAny:           noImplicitAny,
	tserr.KindPropertyMissingInType:   propertyMissingInType,
	tserr.KindUnintentionalComparison: unintentionalComparison,
	tserr.KindPropertyDoesNotExist:    propertyDoesNotExist,
	tserr.KindObjectPossiblyUndefined: objectPossiblyUndefined,
	tserr.KindDirectCast:              directCast,
	tserr.KindSpreadArgument:          spreadArgument,
	tserr.KindRightOperandNotNumeric:  rightOperandNotNumeric,
	tserr.KindLeftOperandNotNumeric:   leftOperandNotNumeric,
	tserr.KindIncompatibleOverload:    incompatibleOverload,
	tserr.KindInvalidShadow:           invalidShadow,
	tserr.KindMissingModule:           missingModule,
	tserr.KindReadonlyAssignment:      readonlyAssignment,
	tserr.KindInterfaceNotImplemented: interfaceNotImplemented,
	tserr.KindBasePropertyMismatch:    basePropertyMismatch,
	tserr.KindUnresolvedIdentifier:    unresolvedIdentifier,
	tserr.KindMissingReturnValue:      missingReturnValue,
	tserr.KindNotCallable:             notCallable,
	tserr.KindInvalidIndexType:        invalidIndexType,
	tserr.KindMistypedProperty:        mistypedProperty,
}

// Build synthesizes a suggestion for the diagnostic using the token stream
// of its source file. ok is false when the kind is not covered.
func Build(err tserr.Diagnostic, tokens []token.Token) (Suggestion, bool) {
	h, ok := handlers[err.Kind]
	if !ok {
		return Suggestion{}, false
	}
	return h(err, tokens), true
}

// Covered reports whether the kind has a synthesis strategy.
func Covered(kind tserr.Kind) bool {
	_, ok := handlers[kind]
	return ok
}
