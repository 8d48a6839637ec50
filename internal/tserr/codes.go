package tserr

import "fmt"

// Kind classifies a compiler diagnostic code into one of the known
// categories.
type Kind uint8

const (
	// KindUnsupported is the fallback for codes not in the classification
	// table. The original code string survives on the Diagnostic.
	KindUnsupported Kind = iota
	KindTypeMismatch
	KindInlineTypeMismatch
	KindMissingParameters
	KindNoImplicitAny
	KindPropertyMissingInType
	KindUnintentionalComparison
	KindPropertyDoesNotExist
	KindObjectPossiblyUndefined
	KindObjectPossiblyNull
	KindObjectUnknown
	KindDirectCast
	KindSpreadArgument
	KindRightOperandNotNumeric
	KindLeftOperandNotNumeric
	KindIncompatibleOverload
	KindInvalidShadow
	KindMissingModule
	KindReadonlyAssignment
	KindInterfaceNotImplemented
	KindBasePropertyMismatch
	KindUnresolvedIdentifier
	KindMissingReturnValue
	KindNotCallable
	KindInvalidIndexType
	KindMistypedProperty
)

// classTable maps every recognized compiler code to its kind. Several codes
// alias to the same kind; the canonical spelling per kind is in kindCode.
var classTable = map[string]Kind{
	"TS2322":  KindTypeMismatch,
	"TS2345":  KindInlineTypeMismatch,
	"TS2554":  KindMissingParameters,
	"TS7006":  KindNoImplicitAny,
	"TS7044":  KindNoImplicitAny,
	"TS2741":  KindPropertyMissingInType,
	"TS2367":  KindUnintentionalComparison,
	"TS18046": KindObjectUnknown,
	"TS2339":  KindPropertyDoesNotExist,
	"TS2532":  KindObjectPossiblyUndefined,
	"TS18048": KindObjectPossiblyUndefined,
	"TS2531":  KindObjectPossiblyNull,
	"TS18047": KindObjectPossiblyNull,
	"TS2352":  KindDirectCast,
	"TS2556":  KindSpreadArgument,
	"TS2363":  KindRightOperandNotNumeric,
	"TS2394":  KindIncompatibleOverload,
	"TS2451":  KindInvalidShadow,
	"TS2307":  KindMissingModule,
	"TS2540":  KindReadonlyAssignment,
	"TS2420":  KindInterfaceNotImplemented,
}

// kindCode holds the canonical compiler code per kind. For aliased kinds it
// is the first documented code, so classify-then-stringify is deliberately
// not a lossless round trip.
//
// Kinds below KindBasePropertyMismatch are produced by Classify; the rest
// are consumed only by the suggestion layer and keep their compiler codes
// for display.
var kindCode = map[Kind]string{
	KindTypeMismatch:            "TS2322",
	KindInlineTypeMismatch:      "TS2345",
	KindMissingParameters:       "TS2554",
	KindNoImplicitAny:           "TS7006",
	KindPropertyMissingInType:   "TS2741",
	KindUnintentionalComparison: "TS2367",
	KindObjectUnknown:           "TS18046",
	KindPropertyDoesNotExist:    "TS2339",
	KindObjectPossiblyUndefined: "TS2532",
	KindObjectPossiblyNull:      "TS2531",
	KindDirectCast:              "TS2352",
	KindSpreadArgument:          "TS2556",
	KindRightOperandNotNumeric:  "TS2363",
	KindLeftOperandNotNumeric:   "TS2362",
	KindIncompatibleOverload:    "TS2394",
	KindInvalidShadow:           "TS2451",
	KindMissingModule:           "TS2307",
	KindReadonlyAssignment:      "TS2540",
	KindInterfaceNotImplemented: "TS2420",
	KindBasePropertyMismatch:    "TS2416",
	KindUnresolvedIdentifier:    "TS2304",
	KindMissingReturnValue:      "TS2355",
	KindNotCallable:             "TS2349",
	KindInvalidIndexType:        "TS2538",
	KindMistypedProperty:        "TS2551",
}

var kindTitle = map[Kind]string{
	KindUnsupported:             "Unsupported diagnostic code",
	KindTypeMismatch:            "Type mismatch",
	KindInlineTypeMismatch:      "Argument type mismatch",
	KindMissingParameters:       "Missing parameters",
	KindNoImplicitAny:           "Implicit any",
	KindPropertyMissingInType:   "Property missing in type",
	KindUnintentionalComparison: "Unintentional comparison",
	KindPropertyDoesNotExist:    "Property does not exist",
	KindObjectPossiblyUndefined: "Object is possibly undefined",
	KindObjectPossiblyNull:      "Object is possibly null",
	KindObjectUnknown:           "Object is of type unknown",
	KindDirectCast:              "Direct cast potentially mistaken",
	KindSpreadArgument:          "Spread argument must be a tuple type",
	KindRightOperandNotNumeric:  "Right arithmetic operand must be a number",
	KindLeftOperandNotNumeric:   "Left arithmetic operand must be a number",
	KindIncompatibleOverload:    "Incompatible overload",
	KindInvalidShadow:           "Invalid shadowing in scope",
	KindMissingModule:           "Module not found",
	KindReadonlyAssignment:      "Assignment to readonly property",
	KindInterfaceNotImplemented: "Interface not implemented correctly",
	KindBasePropertyMismatch:    "Property incompatible with base class",
	KindUnresolvedIdentifier:    "Cannot find identifier",
	KindMissingReturnValue:      "Missing return value",
	KindNotCallable:             "Expression is not callable",
	KindInvalidIndexType:        "Invalid index type",
	KindMistypedProperty:        "Mistyped property name",
}

// Classify maps a raw compiler code to its Kind. Classification is total:
// unknown codes map to KindUnsupported and never fail.
func Classify(code string) Kind {
	if k, ok := classTable[code]; ok {
		return k
	}
	return KindUnsupported
}

// Code returns the canonical compiler code for the kind, or an empty string
// for KindUnsupported (whose code lives on the Diagnostic that produced it).
func (k Kind) Code() string {
	return kindCode[k]
}

// Title returns a short human description of the kind.
func (k Kind) Title() string {
	if title, ok := kindTitle[k]; ok {
		return title
	}
	return kindTitle[KindUnsupported]
}

func (k Kind) String() string {
	if k == KindUnsupported {
		return kindTitle[KindUnsupported]
	}
	return fmt.Sprintf("[%s]: %s", k.Code(), k.Title())
}
