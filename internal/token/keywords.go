package token

// keywords holds the reserved words of the language. Contextual keywords
// (type, interface, readonly, ...) are included: for position lookup it only
// matters that they tokenize as single units.
var keywords = map[string]struct{}{
	"abstract":   {},
	"any":        {},
	"as":         {},
	"async":      {},
	"await":      {},
	"boolean":    {},
	"break":      {},
	"case":       {},
	"catch":      {},
	"class":      {},
	"const":      {},
	"continue":   {},
	"debugger":   {},
	"declare":    {},
	"default":    {},
	"delete":     {},
	"do":         {},
	"else":       {},
	"enum":       {},
	"export":     {},
	"extends":    {},
	"false":      {},
	"finally":    {},
	"for":        {},
	"from":       {},
	"function":   {},
	"if":         {},
	"implements": {},
	"import":     {},
	"in":         {},
	"instanceof": {},
	"interface":  {},
	"keyof":      {},
	"let":        {},
	"namespace":  {},
	"never":      {},
	"new":        {},
	"null":       {},
	"number":     {},
	"object":     {},
	"of":         {},
	"private":    {},
	"protected":  {},
	"public":     {},
	"readonly":   {},
	"return":     {},
	"satisfies":  {},
	"static":     {},
	"string":     {},
	"super":      {},
	"switch":     {},
	"symbol":     {},
	"this":       {},
	"throw":      {},
	"true":       {},
	"try":        {},
	"type":       {},
	"typeof":     {},
	"undefined":  {},
	"unknown":    {},
	"var":        {},
	"void":       {},
	"while":      {},
	"with":       {},
	"yield":      {},
}

// LookupIdent classifies an identifier-shaped lexeme as Ident or Keyword.
func LookupIdent(text string) Kind {
	if _, ok := keywords[text]; ok {
		return Keyword
	}
	return Ident
}
