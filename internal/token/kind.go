package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident represents an identifier token.
	Ident
	// Keyword represents a reserved word (see keywords.go).
	Keyword
	// Number represents a numeric literal.
	Number
	// String represents a single- or double-quoted string literal.
	String
	// Template represents a backtick template literal.
	Template
	// Punct represents an operator or punctuation token.
	Punct
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "eof"
	case Ident:
		return "ident"
	case Keyword:
		return "keyword"
	case Number:
		return "number"
	case String:
		return "string"
	case Template:
		return "template"
	case Punct:
		return "punct"
	}
	return "unknown"
}
