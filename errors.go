// errors.go: structured parse errors and caret-snippet rendering
//
// Every parsing entry point in this package reports failure as a *Error
// carrying the error kind, the 1-based source line, either a byte column
// (character-level errors) or a token index (token-level errors), and the
// unconsumed remainder of the input at the failure point. Nothing in the
// parsing path aborts the process; panics are reserved for the
// wrong-variant accessor contract on Address, Chunk and Block.
//
// WrapErrorWithSource upgrades a *Error into a readable multi-line
// snippet with a caret pointing at the offending column:
//
//	LEX ERROR at 2:7: unexpected ')'
//
//	   1 | G0 X0
//	   2 | G1 X1 )
//	     |       ^
//	   3 | M2
//
// The snippet shows up to one line of context before and after the error.
// This utility is independent of the parsing pipeline; cmd/gpr uses it to
// surface failures against the original file text.
package gpr

import (
	"errors"
	"fmt"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// ErrKind classifies a parse failure.
type ErrKind int

const (
	// ErrUnexpectedChar: a token had a different shape than the parser
	// required at that position (e.g. a multi-character token where a
	// single-character word was expected).
	ErrUnexpectedChar ErrKind = iota

	// ErrUnknownAddressLetter: a word letter outside both typing tables.
	ErrUnknownAddressLetter

	// ErrBadNumber: a token the lexer classified as numeric could not be
	// converted to the target type (e.g. a lone "-" or ".", or a float
	// literal where an integer was required).
	ErrBadNumber

	// ErrUnexpectedCloser: ')' or ']' with no corresponding opener.
	ErrUnexpectedCloser

	// ErrUnexpectedEndOfLine: the line ended where a value token was
	// still required (e.g. a bare "N" with nothing after it).
	ErrUnexpectedEndOfLine
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnexpectedChar:
		return "unexpected character"
	case ErrUnknownAddressLetter:
		return "unrecognized address letter"
	case ErrBadNumber:
		return "malformed numeric literal"
	case ErrUnexpectedCloser:
		return "unexpected closing delimiter"
	case ErrUnexpectedEndOfLine:
		return "unexpected end of line"
	}
	return "unknown error"
}

// Error is the single error type produced by this package.
type Error struct {
	Kind      ErrKind
	Line      int // 1-based source line
	Col       int // 0-based byte column; -1 for token-level errors
	TokenIdx  int // index of the offending token; -1 for character-level errors
	Msg       string
	Remaining string // unconsumed input at the failure point
}

func (e *Error) Error() string {
	if e.Col >= 0 {
		// Columns are stored 0-based; render 1-based.
		return fmt.Sprintf("LEX ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
	}
	return fmt.Sprintf("PARSE ERROR at line %d, token %d: %s", e.Line, e.TokenIdx, e.Msg)
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind ErrKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// WrapErrorWithSource returns err augmented with a caret-annotated
// snippet of the provided source. Errors other than *Error are returned
// unchanged.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name (typically
// a file path) included in the header.
func WrapErrorWithName(err error, srcName, src string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	header := "PARSE ERROR"
	if e.Col >= 0 {
		header = "LEX ERROR"
	}
	return fmt.Errorf("%s", snippetString(src, header, srcName, e))
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: snippet rendering
   =========================== */

// snippetString builds the multi-line snippet: header, one context line
// before and after when available, and a caret under the column when one
// is known. Out-of-range positions are clamped so rendering never fails.
func snippetString(src, header, name string, e *Error) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	line := e.Line
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	where := fmt.Sprintf("line %d", line)
	if e.Col >= 0 {
		where = fmt.Sprintf("%d:%d", line, e.Col+1)
	}
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %s: %s\n\n", header, name, where, e.Msg)
	} else {
		fmt.Fprintf(&b, "%s at %s: %s\n\n", header, where, e.Msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	if e.Col >= 0 {
		pad := e.Col
		if pad > len(lines[line-1]) {
			pad = len(lines[line-1])
		}
		fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", pad))
	}
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
