package gpr

// Block is one logical line of a G-code program: an optional N line
// number, a deleted flag (the line began with '/'), and an ordered
// sequence of chunks. A block owns its chunks exclusively; the parser
// never mutates a block after constructing it. The debug text is a
// one-time annotation attached by ParseGCodeSavingBlockText.
type Block struct {
	hasLineNo bool
	lineNo    int
	deleted   bool
	chunks    []Chunk
	debugText string
}

// NewBlock returns a block without a line number.
func NewBlock(deleted bool, chunks []Chunk) Block {
	return Block{deleted: deleted, chunks: chunks}
}

// NewNumberedBlock returns a block carrying an N line number.
func NewNumberedBlock(lineNo int, deleted bool, chunks []Chunk) Block {
	return Block{hasLineNo: true, lineNo: lineNo, deleted: deleted, chunks: chunks}
}

// HasLineNumber reports whether the line began with an N word.
func (b Block) HasLineNumber() bool { return b.hasLineNo }

// LineNumber returns the N line number. It panics when the block has
// none; check HasLineNumber first.
func (b Block) LineNumber() int {
	if !b.hasLineNo {
		panic("gpr: LineNumber called on block without a line number")
	}
	return b.lineNo
}

// IsDeleted reports whether the line began with the '/' block-delete
// marker.
func (b Block) IsDeleted() bool { return b.deleted }

// NumChunks returns the number of chunks in the block.
func (b Block) NumChunks() int { return len(b.chunks) }

// Chunk returns the i-th chunk, front to back.
func (b Block) Chunk(i int) Chunk { return b.chunks[i] }

// Chunks returns the block's chunks in order. The slice is shared with
// the block and must not be modified.
func (b Block) Chunks() []Chunk { return b.chunks }

// DebugText returns the pretty-printed reconstruction attached to the
// block, or "" when none was captured.
func (b Block) DebugText() string { return b.debugText }

// SetDebugText attaches a debug reconstruction of the block. This is an
// annotation, not a structural mutation; Equal ignores it.
func (b *Block) SetDebugText(text string) { b.debugText = text }

// Equal reports structural equality: same line-number and deleted flags
// and chunk-by-chunk equal chunks. Debug text is not compared.
func (b Block) Equal(o Block) bool {
	if b.hasLineNo != o.hasLineNo || b.deleted != o.deleted {
		return false
	}
	if b.hasLineNo && b.lineNo != o.lineNo {
		return false
	}
	if len(b.chunks) != len(o.chunks) {
		return false
	}
	for i := range b.chunks {
		if !b.chunks[i].Equal(o.chunks[i]) {
			return false
		}
	}
	return true
}
