// parser.go — token-level parsing: chunks, blocks, whole programs.
//
// OVERVIEW
// --------
// This module consumes the token sequences produced by the lexer (see
// lexer.go) and assembles the typed tree: one Chunk per semantic unit,
// one Block per line, one Program per input text.
//
// Chunk recognition dispatches on the first byte of the current token:
//
//	"[...]"  → Comment with delimiters '[' ']' (delimiters stripped)
//	"(...)"  → Comment with delimiters '(' ')' (delimiters stripped)
//	"%"      → Percent program marker
//	";"      → Comment ';' ';' whose text is every remaining token on
//	           the line, concatenated (line comments run to end of line)
//	other    → a letter: one bounds-checked token of lookahead decides
//	           between an isolated Word (no following token, or one that
//	           does not start with digit/'.'/'-') and a WordAddress.
//
// The block assembler first consumes an optional leading "/" (block
// delete: the block is marked deleted, no chunk is emitted) and an
// optional leading "N" with an integer line number, then chunk-parses to
// exhaustion. The program assembler splits the input on '\n', skips
// zero-length lines, and folds each remaining line through
// lexer → block assembler.
//
// Every failure is a *Error (see errors.go) naming the kind, the source
// line, the offending token index and the unconsumed remainder. Block
// construction is all-or-nothing: a failing line never yields a partial
// block, and previously parsed blocks are never touched.
package gpr

import (
	"fmt"
	"strconv"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// ParseGCode parses an entire multi-line G-code program. Blocks carry no
// debug text.
func ParseGCode(programText string) (Program, error) {
	blocks, err := lexProgram(programText)
	if err != nil {
		return Program{}, err
	}
	return NewProgram(blocks), nil
}

// ParseGCodeSavingBlockText parses like ParseGCode and additionally
// attaches to every block a pretty-printed reconstruction of itself.
// The reconstruction is canonical text, not necessarily byte-identical
// to the source line.
func ParseGCodeSavingBlockText(programText string) (Program, error) {
	blocks, err := lexProgram(programText)
	if err != nil {
		return Program{}, err
	}
	for i := range blocks {
		blocks[i].SetDebugText(blocks[i].String())
	}
	return NewProgram(blocks), nil
}

//// END_OF_PUBLIC

////////////////////////////////////////////////////////////////////////////////
///////////////////////////// PRIVATE IMPLEMENTATION ///////////////////////////
////////////////////////////////////////////////////////////////////////////////

type parser struct {
	cur  *cursor[string]
	line int // 1-based source line, for error positions
}

func (p *parser) err(kind ErrKind, msg string) *Error {
	return &Error{
		Kind:      kind,
		Line:      p.line,
		Col:       -1,
		TokenIdx:  p.cur.pos,
		Msg:       msg,
		Remaining: strings.Join(p.cur.remaining(), " "),
	}
}

// ─────────────────────────── numeric values ─────────────────────────

func (p *parser) parseInt() (int, *Error) {
	tok, ok := p.cur.peek()
	if !ok {
		return 0, p.err(ErrUnexpectedEndOfLine, "expected an integer value")
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, p.err(ErrBadNumber, fmt.Sprintf("malformed integer %q", tok))
	}
	p.cur.advance()
	return v, nil
}

func (p *parser) parseFloat() (float64, *Error) {
	tok, ok := p.cur.peek()
	if !ok {
		return 0, p.err(ErrUnexpectedEndOfLine, "expected a numeric value")
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, p.err(ErrBadNumber, fmt.Sprintf("malformed number %q", tok))
	}
	p.cur.advance()
	return v, nil
}

// ─────────────────────────── chunks ─────────────────────────

// lineCommentText concatenates every remaining token on the line.
func (p *parser) lineCommentText() string {
	var b strings.Builder
	for p.cur.left() {
		tok, _ := p.cur.peek()
		b.WriteString(tok)
		p.cur.advance()
	}
	return b.String()
}

// stripDelims drops the enclosing delimiter characters of a bracket or
// paren comment token.
func stripDelims(tok string) string {
	if len(tok) < 2 {
		return ""
	}
	return tok[1 : len(tok)-1]
}

func (p *parser) parseIsolatedWord() (Chunk, *Error) {
	tok, _ := p.cur.peek()
	if len(tok) != 1 {
		return Chunk{}, p.err(ErrUnexpectedChar,
			fmt.Sprintf("expected a single-character word, got %q", tok))
	}
	p.cur.advance()
	return NewIsolatedWord(tok[0]), nil
}

func (p *parser) parseWordAddress() (Chunk, *Error) {
	tok, _ := p.cur.peek()
	if len(tok) != 1 {
		return Chunk{}, p.err(ErrUnexpectedChar,
			fmt.Sprintf("expected a single-character word, got %q", tok))
	}
	letter := tok[0]
	kind, known := addressKindForLetter(letter)
	if !known {
		return Chunk{}, p.err(ErrUnknownAddressLetter,
			fmt.Sprintf("unrecognized address letter %q", string(letter)))
	}
	p.cur.advance()
	if kind == AddressFloat {
		v, err := p.parseFloat()
		if err != nil {
			return Chunk{}, err
		}
		return NewWordAddress(letter, FloatAddress(v)), nil
	}
	v, err := p.parseInt()
	if err != nil {
		return Chunk{}, err
	}
	return NewWordAddress(letter, IntAddress(v)), nil
}

// parseChunk recognizes one chunk at the cursor. The caller has checked
// that tokens remain.
func (p *parser) parseChunk() (Chunk, *Error) {
	tok, _ := p.cur.peek()
	switch {
	case tok[0] == '[':
		p.cur.advance()
		return NewComment('[', ']', stripDelims(tok)), nil
	case tok[0] == '(':
		p.cur.advance()
		return NewComment('(', ')', stripDelims(tok)), nil
	case tok == "%":
		p.cur.advance()
		return NewPercent(), nil
	case tok == ";":
		p.cur.advance()
		return NewComment(';', ';', p.lineCommentText()), nil
	default:
		// A letter token as the very last token on the line has no
		// lookahead target; it is an isolated word.
		next, ok := p.cur.peekAt(1)
		if !ok || !isNumChar(next[0]) {
			return p.parseIsolatedWord()
		}
		return p.parseWordAddress()
	}
}

// ─────────────────────────── blocks ─────────────────────────

// parseSlash consumes a leading "/" block-delete marker if present.
func (p *parser) parseSlash() bool {
	tok, ok := p.cur.peek()
	if ok && tok == "/" {
		p.cur.advance()
		return true
	}
	return false
}

// parseLineNumber consumes a leading "N" and its integer value if
// present. The prefix must be the exact token "N"; a lowercase "n" is an
// ordinary word-address.
func (p *parser) parseLineNumber() (int, bool, *Error) {
	tok, ok := p.cur.peek()
	if !ok || tok != "N" {
		return 0, false, nil
	}
	p.cur.advance()
	n, err := p.parseInt()
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// parseTokens assembles one block from the token sequence of one line.
func parseTokens(tokens []string, lineNo int) (Block, *Error) {
	if len(tokens) == 0 {
		return Block{}, nil
	}
	p := &parser{cur: newCursor(tokens), line: lineNo}

	deleted := p.parseSlash()
	lineNum, hasLineNum, err := p.parseLineNumber()
	if err != nil {
		return Block{}, err
	}

	var chunks []Chunk
	for p.cur.left() {
		ch, err := p.parseChunk()
		if err != nil {
			return Block{}, err
		}
		chunks = append(chunks, ch)
	}

	if hasLineNum {
		return NewNumberedBlock(lineNum, deleted, chunks), nil
	}
	return NewBlock(deleted, chunks), nil
}

// ─────────────────────────── programs ─────────────────────────

// lexProgram splits the input on newlines and folds every non-empty line
// through the lexer and the block assembler. Physical line numbers are
// kept for error positions even though blank lines produce no block.
func lexProgram(text string) ([]Block, *Error) {
	var blocks []Block
	for i, line := range strings.Split(text, "\n") {
		if len(line) == 0 {
			continue
		}
		lineNo := i + 1
		tokens, err := lexBlockAt(line, lineNo)
		if err != nil {
			return nil, err
		}
		b, perr := parseTokens(tokens, lineNo)
		if perr != nil {
			return nil, perr
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}
