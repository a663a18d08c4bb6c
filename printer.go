// printer.go: canonical text rendering for chunks, blocks and programs.
//
// Rendering is deterministic and re-parseable: parsing the printed form
// of a block yields a structurally equal block. The printed text is not
// guaranteed to be byte-identical to the original source (whitespace is
// normalized to single spaces, numbers print in their shortest form).
package gpr

import (
	"fmt"
	"strings"
)

// String renders a chunk canonically: a comment as
// <left><text><right>, a word-address as <letter><value>, the percent
// marker as "%", an isolated word as its bare character.
func (c Chunk) String() string {
	switch c.kind {
	case ChunkComment:
		return string(c.leftDelim) + c.text + string(c.rightDelim)
	case ChunkWordAddress:
		return string(c.letter) + c.addr.String()
	case ChunkPercent:
		return "%"
	case ChunkWord:
		return string(c.word)
	}
	// Kinds are closed; the zero Chunk is a comment.
	return ""
}

// String renders a block canonically: a leading "/" when the block is
// deleted, an "N<num> " prefix when a line number is present, then each
// chunk's canonical text, space-separated. The "/" keeps the deleted
// flag round-trippable.
func (b Block) String() string {
	var sb strings.Builder
	if b.deleted {
		sb.WriteByte('/')
	}
	if b.hasLineNo {
		fmt.Fprintf(&sb, "N%d", b.lineNo)
	}
	for i, c := range b.chunks {
		if i > 0 || b.deleted || b.hasLineNo {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// String renders the program one block per line, in source order.
func (p Program) String() string {
	var sb strings.Builder
	for i, b := range p.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.String())
	}
	return sb.String()
}
