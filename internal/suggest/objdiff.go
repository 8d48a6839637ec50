package suggest

import (
	"sort"
	"strings"
)

// propertyMismatch records one property whose provided type text differs
// from the expected one.
type propertyMismatch struct {
	Name     string
	Provided string
	Expected string
}

// objectTypeMismatches extracts the provided and expected object-type
// literals from an argument-mismatch message and diffs them. It returns nil
// when either literal is absent.
func objectTypeMismatches(msg string) []propertyMismatch {
	provided, ok := extractObjectType(msg, "Argument of type '")
	if !ok {
		return nil
	}
	expected, ok := extractObjectType(msg, "to parameter of type '")
	if !ok {
		return nil
	}
	return diffProperties(parseObjectProperties(provided), parseObjectProperties(expected))
}

// extractObjectType returns the quoted text following marker.
func extractObjectType(msg, marker string) (string, bool) {
	start := strings.Index(msg, marker)
	if start < 0 {
		return "", false
	}
	rest := msg[start+len(marker):]
	lit, _, ok := strings.Cut(rest, "'")
	if !ok {
		return "", false
	}
	return lit, true
}

// parseObjectProperties parses an object-type literal `{ a: string; b: T }`
// into a property-name -> type-text map. Anything that is not an object
// literal yields an empty map rather than failing.
func parseObjectProperties(lit string) map[string]string {
	props := make(map[string]string)

	lit = strings.TrimSpace(lit)
	if !strings.HasPrefix(lit, "{") || !strings.HasSuffix(lit, "}") {
		return props
	}

	inner := lit[1 : len(lit)-1]
	for _, clause := range strings.Split(inner, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		name, typeText, ok := strings.Cut(clause, ":")
		if !ok {
			continue
		}
		props[strings.TrimSpace(name)] = strings.TrimSpace(typeText)
	}
	return props
}

// diffProperties reports every property of expected that provided also has
// but with different type text. Properties present in only one map are not
// reported. Results are sorted by property name: map iteration order must
// not leak into the output.
func diffProperties(provided, expected map[string]string) []propertyMismatch {
	var mismatches []propertyMismatch
	for name, expectedType := range expected {
		if providedType, ok := provided[name]; ok && providedType != expectedType {
			mismatches = append(mismatches, propertyMismatch{
				Name:     name,
				Provided: providedType,
				Expected: expectedType,
			})
		}
	}
	sort.Slice(mismatches, func(i, j int) bool {
		return mismatches[i].Name < mismatches[j].Name
	})
	return mismatches
}
