package gpr

// Program is an ordered sequence of blocks, one per non-blank physical
// line of the source, in source order. Blank lines contribute no block,
// so indices correspond to physical line numbers only when every line
// was non-blank.
type Program struct {
	blocks []Block
}

// NewProgram builds a program from a finished sequence of blocks. The
// program takes ownership of the slice.
func NewProgram(blocks []Block) Program { return Program{blocks: blocks} }

// NumBlocks returns the number of blocks in the program.
func (p Program) NumBlocks() int { return len(p.blocks) }

// Block returns the i-th block, front to back.
func (p Program) Block(i int) Block { return p.blocks[i] }

// Blocks returns the program's blocks in order. The slice is shared with
// the program and must not be modified.
func (p Program) Blocks() []Block { return p.blocks }
