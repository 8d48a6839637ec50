package tserr

import (
	"strconv"
	"strings"
)

// Diagnostic is one structured compiler error, produced by Parse.
// Line and Column are the 1-based values from the diagnostic text and point
// into File, not into the diagnostic line itself.
type Diagnostic struct {
	File    string
	Line    uint32
	Column  uint32
	Kind    Kind
	RawCode string // code exactly as it appeared in the diagnostic
	Message string
}

// CodeString returns the canonical compiler code for known kinds and the
// preserved original code for unsupported ones. Aliased codes collapse to
// their canonical spelling.
func (d Diagnostic) CodeString() string {
	if d.Kind == KindUnsupported {
		return d.RawCode
	}
	return d.Kind.Code()
}

// Parse converts one line of compiler output into a Diagnostic.
//
// Grammar: <file>(<line>,<column>): error <code>: <message>
//
// Each separator is cut at its first occurrence, in order: "(",
// "): error ", ",", ": ". A missing separator or a non-numeric coordinate
// rejects the whole line.
func Parse(line string) (Diagnostic, bool) {
	file, rest, ok := strings.Cut(line, "(")
	if !ok {
		return Diagnostic{}, false
	}
	coords, rest, ok := strings.Cut(rest, "): error ")
	if !ok {
		return Diagnostic{}, false
	}
	lineText, colText, ok := strings.Cut(coords, ",")
	if !ok {
		return Diagnostic{}, false
	}
	code, msg, ok := strings.Cut(rest, ": ")
	if !ok {
		return Diagnostic{}, false
	}

	lineNo, err := strconv.ParseUint(lineText, 10, 32)
	if err != nil {
		return Diagnostic{}, false
	}
	colNo, err := strconv.ParseUint(colText, 10, 32)
	if err != nil {
		return Diagnostic{}, false
	}

	return Diagnostic{
		File:    file,
		Line:    uint32(lineNo),
		Column:  uint32(colNo),
		Kind:    Classify(code),
		RawCode: code,
		Message: msg,
	}, true
}
