// lexer.go: character-level tokenization of one G-code line
package gpr

// isNumChar reports whether c can appear inside a numeric token. A bare
// '-' or '.' still lexes as a numeric token; conversion fails later, in
// the chunk parser, with ErrBadNumber.
func isNumChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

func isSpaceChar(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

// lexer scans one line of text into string tokens. Lines carry no
// embedded newline; the program assembler splits on '\n' before lexing.
type lexer struct {
	cur  *cursor[byte]
	line int // 1-based source line, for error positions
}

func (l *lexer) err(kind ErrKind, msg string) *Error {
	return &Error{
		Kind:      kind,
		Line:      l.line,
		Col:       l.cur.pos,
		TokenIdx:  -1,
		Msg:       msg,
		Remaining: string(l.cur.remaining()),
	}
}

func (l *lexer) skipSpace() {
	for l.cur.left() {
		ch, _ := l.cur.peek()
		if !isSpaceChar(ch) {
			return
		}
		l.cur.advance()
	}
}

// numberToken consumes a maximal run of digit/'.'/'-' bytes as one token.
func (l *lexer) numberToken() string {
	start := l.cur.pos
	for l.cur.left() {
		ch, _ := l.cur.peek()
		if !isNumChar(ch) {
			break
		}
		l.cur.advance()
	}
	return string(l.cur.elems[start:l.cur.pos])
}

// commentToken consumes a depth-balanced run from an opening delimiter
// through its matching closer, both delimiters and all interior text
// included verbatim. Scanning stops when the depth returns to zero or
// the line is exhausted.
func (l *lexer) commentToken(open, close byte) string {
	start := l.cur.pos
	depth := 0
	for l.cur.left() {
		ch, _ := l.cur.peek()
		switch ch {
		case open:
			depth++
		case close:
			depth--
		}
		l.cur.advance()
		if depth == 0 {
			break
		}
	}
	return string(l.cur.elems[start:l.cur.pos])
}

// lexToken extracts the next token. The caller has already skipped
// whitespace and checked that input remains.
func (l *lexer) lexToken() (string, *Error) {
	ch, _ := l.cur.peek()
	if isNumChar(ch) {
		return l.numberToken(), nil
	}
	switch ch {
	case '(':
		return l.commentToken('(', ')'), nil
	case '[':
		return l.commentToken('[', ']'), nil
	case ')':
		return "", l.err(ErrUnexpectedCloser, "unexpected ')'")
	case ']':
		return "", l.err(ErrUnexpectedCloser, "unexpected ']'")
	default:
		// Letters, '%', ';', '/' and any other standalone symbol are
		// single-character tokens.
		l.cur.advance()
		return string(ch), nil
	}
}

// lexBlockAt tokenizes one line, reporting errors against the given
// 1-based source line number.
func lexBlockAt(blockText string, lineNo int) ([]string, *Error) {
	l := &lexer{cur: newCursor([]byte(blockText)), line: lineNo}
	var tokens []string
	l.skipSpace()
	for l.cur.left() {
		tok, err := l.lexToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		l.skipSpace()
	}
	return tokens, nil
}

// LexBlock tokenizes one line of G-code text. Whitespace never appears
// as a token; no semantic interpretation is performed. The only failure
// is a closing delimiter with no matching opener.
func LexBlock(blockText string) ([]string, error) {
	tokens, err := lexBlockAt(blockText, 1)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
